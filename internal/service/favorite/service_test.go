package favorite

import (
	"sync"
	"testing"

	"gorm.io/gorm"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/dao/mysql/repository"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/model"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/pkg/errorx"
)

// ==================== 테스트용 가짜 구현 ====================

type fakeTransactor struct {
	mu    sync.Mutex
	repos *repository.Repositories
}

func (f *fakeTransactor) Transaction(fn func(tx *repository.Repositories) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(f.repos)
}

type fakePostRepo struct {
	repository.PostRepository
	posts map[uint]*model.Post
}

func (f *fakePostRepo) FindByIdForUpdate(id uint) (*model.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, errorx.Wrapf(gorm.ErrRecordNotFound, errorx.CodeNotFound, "post %d", id)
	}
	cp := *p
	return &cp, nil
}

func (f *fakePostRepo) IncrementFavoriteCnt(id uint) error {
	f.posts[id].FavoriteCnt++
	return nil
}

func (f *fakePostRepo) DecrementFavoriteCnt(id uint) error {
	if f.posts[id].FavoriteCnt > 0 {
		f.posts[id].FavoriteCnt--
	}
	return nil
}

type favKey struct{ memberId, postId uint }

type fakeFavoriteRepo struct {
	repository.FavoriteRepository
	rows map[favKey]*model.Favorite
}

func (f *fakeFavoriteRepo) FindByMemberAndPost(memberId, postId uint) (*model.Favorite, error) {
	row, ok := f.rows[favKey{memberId, postId}]
	if !ok {
		return nil, errorx.Wrapf(gorm.ErrRecordNotFound, errorx.CodeNotFound, "favorite %d/%d", memberId, postId)
	}
	return row, nil
}

func (f *fakeFavoriteRepo) Create(favorite *model.Favorite) error {
	key := favKey{favorite.MemberId, favorite.PostId}
	if _, ok := f.rows[key]; ok {
		return errorx.New(errorx.CodeServerError, "duplicate favorite")
	}
	f.rows[key] = favorite
	return nil
}

func (f *fakeFavoriteRepo) Delete(memberId, postId uint) error {
	delete(f.rows, favKey{memberId, postId})
	return nil
}

func (f *fakeFavoriteRepo) FindByMemberIdWithPost(memberId uint) ([]model.Favorite, error) {
	var out []model.Favorite
	for key, row := range f.rows {
		if key.memberId == memberId {
			out = append(out, *row)
		}
	}
	return out, nil
}

func newTestService() (*favoriteService, *fakePostRepo, *fakeFavoriteRepo) {
	postRepo := &fakePostRepo{posts: map[uint]*model.Post{
		10: {Model: gorm.Model{ID: 10}, MemberId: 1, Title: "특허 매물", Status: model.PostStatusSale},
	}}
	favRepo := &fakeFavoriteRepo{rows: map[favKey]*model.Favorite{}}
	repos := &repository.Repositories{
		Post:     postRepo,
		Favorite: favRepo,
	}
	svc := &favoriteService{
		repos: repos,
		tx:    &fakeTransactor{repos: repos},
	}
	return svc, postRepo, favRepo
}

// ==================== 테스트 ====================

func TestToggleFavoriteOn(t *testing.T) {
	svc, postRepo, favRepo := newTestService()

	rsp, err := svc.ToggleFavorite(2, 10)
	if err != nil {
		t.Fatal(err)
	}
	if !rsp.Liked {
		t.Error("liked = false, want true")
	}
	if rsp.FavoriteCnt != 1 {
		t.Errorf("favoriteCnt = %d, want 1", rsp.FavoriteCnt)
	}
	if postRepo.posts[10].FavoriteCnt != 1 {
		t.Errorf("post counter = %d, want 1", postRepo.posts[10].FavoriteCnt)
	}
	if len(favRepo.rows) != 1 {
		t.Errorf("favorite rows = %d, want 1", len(favRepo.rows))
	}
}

// 두 번 토글하면 원상 복귀: 행 0건, 카운터 0
func TestToggleFavoriteTwice(t *testing.T) {
	svc, postRepo, favRepo := newTestService()

	if _, err := svc.ToggleFavorite(2, 10); err != nil {
		t.Fatal(err)
	}
	rsp, err := svc.ToggleFavorite(2, 10)
	if err != nil {
		t.Fatal(err)
	}
	if rsp.Liked {
		t.Error("liked = true, want false")
	}
	if rsp.FavoriteCnt != 0 {
		t.Errorf("favoriteCnt = %d, want 0", rsp.FavoriteCnt)
	}
	if postRepo.posts[10].FavoriteCnt != 0 {
		t.Errorf("post counter = %d, want 0", postRepo.posts[10].FavoriteCnt)
	}
	if len(favRepo.rows) != 0 {
		t.Errorf("favorite rows = %d, want 0", len(favRepo.rows))
	}
}

func TestToggleFavoritePostNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.ToggleFavorite(2, 999)
	if errorx.GetResultCode(err) != errorx.CodeNotFound {
		t.Errorf("result code = %s, want %s", errorx.GetResultCode(err), errorx.CodeNotFound)
	}
}

// 서로 다른 회원의 찜은 독립이고 카운터는 합산된다
func TestToggleFavoriteMultipleMembers(t *testing.T) {
	svc, postRepo, _ := newTestService()

	if _, err := svc.ToggleFavorite(2, 10); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ToggleFavorite(3, 10); err != nil {
		t.Fatal(err)
	}
	if postRepo.posts[10].FavoriteCnt != 2 {
		t.Errorf("post counter = %d, want 2", postRepo.posts[10].FavoriteCnt)
	}

	// 한 명이 해제해도 다른 회원의 찜은 남는다
	if _, err := svc.ToggleFavorite(2, 10); err != nil {
		t.Fatal(err)
	}
	if postRepo.posts[10].FavoriteCnt != 1 {
		t.Errorf("post counter = %d, want 1", postRepo.posts[10].FavoriteCnt)
	}
}

// 동시 토글 폭주 후에도 "카운터 == 찜 행 수" 불변식이 유지된다
func TestToggleFavoriteConcurrent(t *testing.T) {
	svc, postRepo, favRepo := newTestService()

	var wg sync.WaitGroup
	for m := uint(2); m <= 11; m++ {
		for i := 0; i < 3; i++ {
			wg.Add(1)
			go func(memberId uint) {
				defer wg.Done()
				if _, err := svc.ToggleFavorite(memberId, 10); err != nil {
					t.Error(err)
				}
			}(m)
		}
	}
	wg.Wait()

	if got, want := postRepo.posts[10].FavoriteCnt, len(favRepo.rows); got != want {
		t.Errorf("post counter = %d, favorite rows = %d, want equal", got, want)
	}
}
