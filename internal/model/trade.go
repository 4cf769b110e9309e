package model

import (
	"time"
)

// 거래 상태
// 현재 구매 플로우는 COMPLETED 로 바로 체결된다.
// REQUEST/ACCEPT/CANCELED 는 협상 플로우를 위한 상태 정의로, 전이는 아직 없다
const (
	TradeStatusRequest   = "REQUEST"
	TradeStatusAccept    = "ACCEPT"
	TradeStatusCanceled  = "CANCELED"
	TradeStatusCompleted = "COMPLETED"
)

// Trade 거래 엔티티
// post_id 유니크 인덱스는 행 잠금과 별개로 게시글당 거래 1건을 DB 차원에서 보장한다
type Trade struct {
	ID uint `gorm:"primaryKey"`

	PostId uint  `gorm:"column:post_id;uniqueIndex;not null;comment:게시글 id"`
	Post   *Post `gorm:"foreignKey:PostId"`

	// SellerId 거래 생성 시점의 게시글 소유자
	SellerId uint `gorm:"column:seller_id;index;not null;comment:판매자 id"`
	BuyerId  uint `gorm:"column:buyer_id;index;not null;comment:구매자 id"`

	// Price 거래 시점의 게시글 가격 사본
	Price int `gorm:"column:price;not null;comment:거래 가격"`

	// Status REQUEST | ACCEPT | CANCELED | COMPLETED
	Status string `gorm:"column:status;type:varchar(10);not null;comment:거래 상태"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName 테이블명 지정
func (Trade) TableName() string {
	return "trade"
}
