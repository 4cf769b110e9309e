package model

import (
	"time"
)

// Favorite 찜(관심 게시글) 엔티티
// (member_id, post_id) 쌍은 활성 행이 최대 하나만 존재한다
type Favorite struct {
	ID        uint      `gorm:"primaryKey"`
	MemberId  uint      `gorm:"column:member_id;not null;uniqueIndex:idx_favorite_member_post;comment:회원 id"`
	PostId    uint      `gorm:"column:post_id;not null;uniqueIndex:idx_favorite_member_post;index;comment:게시글 id"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	Post *Post `gorm:"foreignKey:PostId"`
}

// TableName 테이블명 지정
func (Favorite) TableName() string {
	return "favorite"
}
