// Package trade 거래 비즈니스 로직
// 거래 체결은 게시글 행 잠금(SELECT ... FOR UPDATE) 아래에서 판매 상태를 확인하고
// 거래 생성과 SOLD_OUT 전환을 한 트랜잭션으로 묶는다.
// 동시에 여러 구매자가 몰려도 정확히 한 명만 체결된다
package trade

import (
	"errors"

	"go.uber.org/zap"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/dao/mysql/repository"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/dto/request"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/dto/respond"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/model"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/pkg/errorx"
)

// tradeService 거래 서비스 구현
type tradeService struct {
	repos *repository.Repositories
	tx    repository.Transactor
}

// NewTradeService 생성자
func NewTradeService(repos *repository.Repositories) *tradeService {
	return &tradeService{repos: repos, tx: repos}
}

// CreateTrade 거래 체결
//
// 선행 조건은 다음 순서로 검사한다 (앞 조건이 실패하면 뒤는 보지 않는다):
//  1. 게시글 존재          -> 없으면 404-1
//  2. 게시글 상태 == SALE  -> 아니면 400-1 "이미 판매된 게시글입니다."
//  3. 구매자 != 소유자     -> 위반 시 403-1
//  4. 구매자 회원 존재     -> 없으면 404-1
//
// 효과: COMPLETED 거래 1건 생성 + 게시글 SOLD_OUT 전환 (원자적)
func (s *tradeService) CreateTrade(buyerId uint, req request.CreateTradeRequest) (*respond.TradeRespond, error) {
	var created *model.Trade

	err := s.tx.Transaction(func(tx *repository.Repositories) error {
		// 행 잠금으로 읽는다. 경쟁하는 구매자는 여기서 직렬화된다
		post, err := tx.Post.FindByIdForUpdate(req.PostId)
		if err != nil {
			if errorx.IsNotFound(err) {
				return errorx.New(errorx.CodeNotFound, "존재하지 않는 게시글입니다.")
			}
			return err
		}
		if post.Status != model.PostStatusSale {
			return errorx.New(errorx.CodeBadRequest, "이미 판매된 게시글입니다.")
		}
		if post.IsOwnedBy(buyerId) {
			return errorx.New(errorx.CodeForbidden, "본인 게시글은 구매할 수 없습니다.")
		}
		if _, err := tx.Member.FindById(buyerId); err != nil {
			if errorx.IsNotFound(err) {
				return errorx.New(errorx.CodeNotFound, "존재하지 않는 회원입니다.")
			}
			return err
		}

		trade := &model.Trade{
			PostId:   post.ID,
			SellerId: post.MemberId,
			BuyerId:  buyerId,
			Price:    post.Price,
			Status:   model.TradeStatusCompleted,
		}
		if err := tx.Trade.Create(trade); err != nil {
			return err
		}

		post.Status = model.PostStatusSoldOut
		if err := tx.Post.Update(post); err != nil {
			return err
		}
		created = trade
		return nil
	})
	if err != nil {
		var codeErr *errorx.CodeError
		if errors.As(err, &codeErr) && codeErr.ResultCode != errorx.CodeServerError {
			return nil, err
		}
		zap.L().Error("거래 체결 실패", zap.Uint("buyerId", buyerId), zap.Uint("postId", req.PostId), zap.Error(err))
		return nil, errorx.ErrServerError
	}
	return respond.NewTradeRespond(created), nil
}

// GetTrade 거래 단건 조회. 구매자/판매자 본인만 볼 수 있다
func (s *tradeService) GetTrade(memberId, tradeId uint) (*respond.TradeRespond, error) {
	t, err := s.repos.Trade.FindById(tradeId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "존재하지 않는 거래입니다.")
		}
		zap.L().Error("거래 조회 실패", zap.Error(err))
		return nil, errorx.ErrServerError
	}
	if t.BuyerId != memberId && t.SellerId != memberId {
		return nil, errorx.New(errorx.CodeForbidden, "본인 거래만 조회할 수 있습니다.")
	}
	return respond.NewTradeRespond(t), nil
}

// GetMyTrades 내 거래 목록 (구매자 또는 판매자로 참여한 거래)
func (s *tradeService) GetMyTrades(memberId uint) ([]respond.TradeRespond, error) {
	trades, err := s.repos.Trade.FindByMemberId(memberId)
	if err != nil {
		zap.L().Error("거래 목록 조회 실패", zap.Uint("memberId", memberId), zap.Error(err))
		return nil, errorx.ErrServerError
	}
	list := make([]respond.TradeRespond, 0, len(trades))
	for i := range trades {
		list = append(list, *respond.NewTradeRespond(&trades[i]))
	}
	return list, nil
}
