package model

import (
	"time"
)

// Message 채팅 메시지 엔티티
// Uuid 는 스노우플레이크로 생성되어 인스턴스 간에도 충돌하지 않는다
type Message struct {
	ID uint `gorm:"primaryKey"`

	Uuid int64 `gorm:"column:uuid;uniqueIndex;not null;comment:메시지 고유 id"`

	ChatRoomId uint `gorm:"column:chat_room_id;index;not null;comment:채팅방 id"`
	SenderId   uint `gorm:"column:sender_id;index;not null;comment:보낸 회원 id"`

	Content string `gorm:"column:content;type:text;not null;comment:내용"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName 테이블명 지정
func (Message) TableName() string {
	return "message"
}
