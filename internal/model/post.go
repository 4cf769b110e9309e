package model

import (
	"gorm.io/gorm"
)

// 게시글(매물) 상태
// SALE -> SOLD_OUT 은 거래 체결 시 정확히 한 번만 일어나며 되돌아가지 않는다
const (
	PostStatusSale    = "SALE"
	PostStatusSoldOut = "SOLD_OUT"
)

// 특허 카테고리
const (
	CategoryProduct   = "PRODUCT"   // 물건발명
	CategoryMethod    = "METHOD"    // 방법발명
	CategoryUse       = "USE"       // 용도발명
	CategoryDesign    = "DESIGN"    // 디자인권
	CategoryTrademark = "TRADEMARK" // 상표권
	CategoryCopyright = "COPYRIGHT" // 저작권
	CategoryEtc       = "ETC"       // 기타
)

// Post 판매 게시글 엔티티
// FavoriteCnt 는 favorite 테이블의 행 수를 비정규화한 카운터로,
// 찜 토글과 같은 트랜잭션 안에서만 갱신된다
type Post struct {
	gorm.Model

	// MemberId 게시글 소유자(판매자)
	MemberId uint   `gorm:"column:member_id;index;not null;comment:작성자 id"`
	Member   Member `gorm:"foreignKey:MemberId"`

	Title       string `gorm:"column:title;type:varchar(100);not null;comment:제목"`
	Description string `gorm:"column:description;type:text;comment:설명"`

	// Category 특허 카테고리 enum
	Category string `gorm:"column:category;type:varchar(20);index;not null;comment:카테고리"`

	// Price 판매가 (양의 정수, 원 단위)
	Price int `gorm:"column:price;not null;comment:가격"`

	// Status SALE | SOLD_OUT
	Status string `gorm:"column:status;type:varchar(10);index;not null;default:SALE;comment:판매 상태"`

	// FavoriteCnt 찜 수 캐시 (0 이상)
	FavoriteCnt int `gorm:"column:favorite_cnt;not null;default:0;comment:찜 수"`
}

// TableName 테이블명 지정
func (Post) TableName() string {
	return "post"
}

// IsOwnedBy 소유자 확인
func (p *Post) IsOwnedBy(memberId uint) bool {
	return p.MemberId == memberId
}
