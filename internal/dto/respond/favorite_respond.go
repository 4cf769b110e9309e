package respond

import (
	"time"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/model"
)

// FavoriteToggleRespond 찜 토글 결과
type FavoriteToggleRespond struct {
	PostId uint `json:"postId"`
	// Liked 토글 후의 찜 상태
	Liked bool `json:"liked"`
	// FavoriteCnt 토글 후의 게시글 찜 수
	FavoriteCnt int `json:"favoriteCnt"`
}

// MyFavoriteRespond 내 찜 목록의 한 항목
type MyFavoriteRespond struct {
	PostId      uint      `json:"postId"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Price       int       `json:"price"`
	Status      string    `json:"status"`
	FavoriteCnt int       `json:"favoriteCnt"`
	OwnerName   string    `json:"ownerName"`
	LikedAt     time.Time `json:"likedAt"`
}

// NewMyFavoriteRespond 찜 + 게시글 -> 응답 변환. Post preload 가 전제다
func NewMyFavoriteRespond(f *model.Favorite) *MyFavoriteRespond {
	item := &MyFavoriteRespond{
		PostId:  f.PostId,
		LikedAt: f.CreatedAt,
	}
	if f.Post != nil {
		item.Title = f.Post.Title
		item.Category = f.Post.Category
		item.Price = f.Post.Price
		item.Status = f.Post.Status
		item.FavoriteCnt = f.Post.FavoriteCnt
		item.OwnerName = f.Post.Member.Name
	}
	return item
}
