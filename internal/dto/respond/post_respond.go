package respond

import (
	"time"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/model"
)

// PostRespond 게시글 목록용 요약 응답
type PostRespond struct {
	Id          uint      `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Price       int       `json:"price"`
	Status      string    `json:"status"`
	FavoriteCnt int       `json:"favoriteCnt"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PostDetailRespond 게시글 상세 응답
type PostDetailRespond struct {
	PostRespond
	Description string `json:"description"`
	OwnerId     uint   `json:"ownerId"`
	OwnerName   string `json:"ownerName"`
	// IsLiked 조회한 회원이 찜했는지 여부
	IsLiked bool `json:"isLiked"`
}

// NewPostRespond 모델 -> 요약 응답 변환
func NewPostRespond(p *model.Post) *PostRespond {
	return &PostRespond{
		Id:          p.ID,
		Title:       p.Title,
		Category:    p.Category,
		Price:       p.Price,
		Status:      p.Status,
		FavoriteCnt: p.FavoriteCnt,
		CreatedAt:   p.CreatedAt,
	}
}

// NewPostDetailRespond 모델 -> 상세 응답 변환
func NewPostDetailRespond(p *model.Post, isLiked bool) *PostDetailRespond {
	return &PostDetailRespond{
		PostRespond: *NewPostRespond(p),
		Description: p.Description,
		OwnerId:     p.MemberId,
		OwnerName:   p.Member.Name,
		IsLiked:     isLiked,
	}
}
