package repository

import (
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/model"

	"gorm.io/gorm"
)

type tradeRepository struct {
	db *gorm.DB
}

// NewTradeRepository 거래 Repository 생성
func NewTradeRepository(db *gorm.DB) TradeRepository {
	return &tradeRepository{db: db}
}

// FindById id 로 거래 조회
func (r *tradeRepository) FindById(id uint) (*model.Trade, error) {
	var trade model.Trade
	if err := r.db.Preload("Post").First(&trade, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "거래 조회 id=%d", id)
	}
	return &trade, nil
}

// FindByMemberId 회원이 구매자 또는 판매자인 거래 목록
func (r *tradeRepository) FindByMemberId(memberId uint) ([]model.Trade, error) {
	var trades []model.Trade
	if err := r.db.Preload("Post").
		Where("buyer_id = ? OR seller_id = ?", memberId, memberId).
		Order("id DESC").
		Find(&trades).Error; err != nil {
		return nil, wrapDBError(err, "거래 목록 조회")
	}
	return trades, nil
}

// Create 거래 생성
func (r *tradeRepository) Create(trade *model.Trade) error {
	if err := r.db.Create(trade).Error; err != nil {
		return wrapDBError(err, "거래 생성")
	}
	return nil
}

// DeleteByPostId 게시글의 거래 삭제
func (r *tradeRepository) DeleteByPostId(postId uint) error {
	if err := r.db.Where("post_id = ?", postId).Delete(&model.Trade{}).Error; err != nil {
		return wrapDBError(err, "게시글 거래 삭제")
	}
	return nil
}
