// Package favorite 찜 비즈니스 로직
// 찜 토글과 게시글 favoriteCnt 증감은 항상 같은 트랜잭션 안에서 수행되어
// "찜 수 == favorite 행 수" 불변식을 유지한다
package favorite

import (
	"errors"

	"go.uber.org/zap"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/dao/mysql/repository"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/dto/respond"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/model"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/pkg/errorx"
)

// favoriteService 찜 서비스 구현
type favoriteService struct {
	repos *repository.Repositories
	tx    repository.Transactor
}

// NewFavoriteService 생성자
func NewFavoriteService(repos *repository.Repositories) *favoriteService {
	return &favoriteService{repos: repos, tx: repos}
}

// ToggleFavorite 찜 토글
// 게시글 행 잠금 아래에서 찜 존재 여부를 확인하고,
// 없으면 등록 + 카운터 +1, 있으면 해제 + 카운터 -1 을 원자적으로 수행한다.
// 같은 회원이 동시에 두 번 토글해도 잠금 직렬화로 최종 상태가 한 번 토글과 같아진다
func (s *favoriteService) ToggleFavorite(memberId, postId uint) (*respond.FavoriteToggleRespond, error) {
	var result *respond.FavoriteToggleRespond

	err := s.tx.Transaction(func(tx *repository.Repositories) error {
		post, err := tx.Post.FindByIdForUpdate(postId)
		if err != nil {
			if errorx.IsNotFound(err) {
				return errorx.New(errorx.CodeNotFound, "존재하지 않는 게시글입니다.")
			}
			return err
		}

		_, err = tx.Favorite.FindByMemberAndPost(memberId, postId)
		switch {
		case err == nil:
			// 이미 찜한 상태 -> 해제
			if err := tx.Favorite.Delete(memberId, postId); err != nil {
				return err
			}
			if err := tx.Post.DecrementFavoriteCnt(postId); err != nil {
				return err
			}
			result = &respond.FavoriteToggleRespond{
				PostId:      postId,
				Liked:       false,
				FavoriteCnt: post.FavoriteCnt - 1,
			}
			if result.FavoriteCnt < 0 {
				result.FavoriteCnt = 0
			}
		case errorx.IsNotFound(err):
			// 찜 등록
			if err := tx.Favorite.Create(&model.Favorite{MemberId: memberId, PostId: postId}); err != nil {
				return err
			}
			if err := tx.Post.IncrementFavoriteCnt(postId); err != nil {
				return err
			}
			result = &respond.FavoriteToggleRespond{
				PostId:      postId,
				Liked:       true,
				FavoriteCnt: post.FavoriteCnt + 1,
			}
		default:
			return err
		}
		return nil
	})
	if err != nil {
		var codeErr *errorx.CodeError
		if errors.As(err, &codeErr) && codeErr.ResultCode != errorx.CodeServerError {
			return nil, err
		}
		zap.L().Error("찜 토글 실패", zap.Uint("memberId", memberId), zap.Uint("postId", postId), zap.Error(err))
		return nil, errorx.ErrServerError
	}
	return result, nil
}

// GetMyFavorites 내 찜 목록 (최신순)
func (s *favoriteService) GetMyFavorites(memberId uint) ([]respond.MyFavoriteRespond, error) {
	favorites, err := s.repos.Favorite.FindByMemberIdWithPost(memberId)
	if err != nil {
		zap.L().Error("찜 목록 조회 실패", zap.Uint("memberId", memberId), zap.Error(err))
		return nil, errorx.ErrServerError
	}
	list := make([]respond.MyFavoriteRespond, 0, len(favorites))
	for i := range favorites {
		list = append(list, *respond.NewMyFavoriteRespond(&favorites[i]))
	}
	return list, nil
}
