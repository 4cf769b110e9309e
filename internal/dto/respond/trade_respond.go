package respond

import (
	"time"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/model"
)

// TradeRespond 거래 응답
type TradeRespond struct {
	Id        uint      `json:"id"`
	PostId    uint      `json:"postId"`
	SellerId  uint      `json:"sellerId"`
	BuyerId   uint      `json:"buyerId"`
	Price     int       `json:"price"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewTradeRespond 모델 -> 응답 변환
func NewTradeRespond(t *model.Trade) *TradeRespond {
	return &TradeRespond{
		Id:        t.ID,
		PostId:    t.PostId,
		SellerId:  t.SellerId,
		BuyerId:   t.BuyerId,
		Price:     t.Price,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
	}
}
