package model

import (
	"gorm.io/gorm"
)

// ChatRoom 채팅방 엔티티
// 게시글 문의용 방은 PostId 를 가지며, 게시글 삭제 시 함께 정리된다
type ChatRoom struct {
	gorm.Model

	// PostId 연결된 게시글 (없을 수 있다)
	PostId *uint `gorm:"column:post_id;index;comment:게시글 id"`

	Name string `gorm:"column:name;type:varchar(100);not null;comment:방 이름"`
}

// TableName 테이블명 지정
func (ChatRoom) TableName() string {
	return "chat_room"
}
