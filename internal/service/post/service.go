// Package post 게시글 비즈니스 로직
package post

import (
	"go.uber.org/zap"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/dao/mysql/repository"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/dto/request"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/dto/respond"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/model"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/pkg/errorx"
)

// postService 게시글 서비스 구현
// tx 는 트랜잭션 경계 인터페이스로, 테스트에서 가짜 구현으로 바꿔치기한다
type postService struct {
	repos *repository.Repositories
	tx    repository.Transactor
}

// NewPostService 생성자
func NewPostService(repos *repository.Repositories) *postService {
	return &postService{repos: repos, tx: repos}
}

// CreatePost 게시글 등록. 초기 상태는 SALE, 찜 수는 0
func (s *postService) CreatePost(memberId uint, req request.CreatePostRequest) (*respond.PostRespond, error) {
	p := &model.Post{
		MemberId:    memberId,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Status:      model.PostStatusSale,
	}
	if err := s.repos.Post.Create(p); err != nil {
		zap.L().Error("게시글 생성 실패", zap.Error(err))
		return nil, errorx.ErrServerError
	}
	return respond.NewPostRespond(p), nil
}

// GetPost 게시글 상세 조회
// viewerId 가 0 이 아니면 해당 회원의 찜 여부도 함께 조회한다
func (s *postService) GetPost(postId uint, viewerId uint) (*respond.PostDetailRespond, error) {
	p, err := s.repos.Post.FindById(postId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "존재하지 않는 게시글입니다.")
		}
		zap.L().Error("게시글 조회 실패", zap.Error(err))
		return nil, errorx.ErrServerError
	}

	isLiked := false
	if viewerId != 0 {
		if _, err := s.repos.Favorite.FindByMemberAndPost(viewerId, postId); err == nil {
			isLiked = true
		} else if !errorx.IsNotFound(err) {
			zap.L().Warn("찜 여부 조회 실패", zap.Error(err))
		}
	}
	return respond.NewPostDetailRespond(p, isLiked), nil
}

// GetPostList 최신순 목록 조회
func (s *postService) GetPostList(category string, page, pageSize int) ([]respond.PostRespond, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	posts, total, err := s.repos.Post.FindAll(category, page, pageSize)
	if err != nil {
		zap.L().Error("게시글 목록 조회 실패", zap.Error(err))
		return nil, 0, errorx.ErrServerError
	}
	list := make([]respond.PostRespond, 0, len(posts))
	for i := range posts {
		list = append(list, *respond.NewPostRespond(&posts[i]))
	}
	return list, total, nil
}

// GetMyPostList 내 게시글 목록
func (s *postService) GetMyPostList(memberId uint) ([]respond.PostRespond, error) {
	posts, err := s.repos.Post.FindByMemberId(memberId)
	if err != nil {
		zap.L().Error("내 게시글 목록 조회 실패", zap.Error(err))
		return nil, errorx.ErrServerError
	}
	list := make([]respond.PostRespond, 0, len(posts))
	for i := range posts {
		list = append(list, *respond.NewPostRespond(&posts[i]))
	}
	return list, nil
}

// UpdatePost 게시글 수정. 소유자만 가능하며 판매 완료 게시글은 수정할 수 없다
func (s *postService) UpdatePost(memberId, postId uint, req request.UpdatePostRequest) (*respond.PostRespond, error) {
	p, err := s.repos.Post.FindById(postId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "존재하지 않는 게시글입니다.")
		}
		zap.L().Error("게시글 조회 실패", zap.Error(err))
		return nil, errorx.ErrServerError
	}
	if !p.IsOwnedBy(memberId) {
		return nil, errorx.New(errorx.CodeForbidden, "본인 게시글만 수정할 수 있습니다.")
	}
	if p.Status == model.PostStatusSoldOut {
		return nil, errorx.New(errorx.CodeBadRequest, "이미 판매된 게시글입니다.")
	}

	p.Title = req.Title
	p.Description = req.Description
	p.Category = req.Category
	p.Price = req.Price
	if err := s.repos.Post.Update(p); err != nil {
		zap.L().Error("게시글 수정 실패", zap.Error(err))
		return nil, errorx.ErrServerError
	}
	return respond.NewPostRespond(p), nil
}

// DeletePost 게시글 삭제
// 찜, 거래, 문의 채팅방을 게시글과 한 트랜잭션에서 함께 정리한다
func (s *postService) DeletePost(memberId, postId uint) error {
	p, err := s.repos.Post.FindById(postId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "존재하지 않는 게시글입니다.")
		}
		zap.L().Error("게시글 조회 실패", zap.Error(err))
		return errorx.ErrServerError
	}
	if !p.IsOwnedBy(memberId) {
		return errorx.New(errorx.CodeForbidden, "본인 게시글만 삭제할 수 있습니다.")
	}

	err = s.tx.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Favorite.DeleteByPostId(postId); err != nil {
			return err
		}
		if err := tx.Trade.DeleteByPostId(postId); err != nil {
			return err
		}
		if err := tx.ChatRoom.DeleteByPostId(postId); err != nil {
			return err
		}
		return tx.Post.Delete(postId)
	})
	if err != nil {
		zap.L().Error("게시글 삭제 실패", zap.Uint("postId", postId), zap.Error(err))
		return errorx.ErrServerError
	}
	return nil
}
