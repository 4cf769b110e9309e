package respond

import (
	"time"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/model"
)

// MessageRespond 채팅 메시지 응답
type MessageRespond struct {
	Uuid       int64     `json:"uuid,string"`
	ChatRoomId uint      `json:"chatRoomId"`
	SenderId   uint      `json:"senderId"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewMessageRespond 모델 -> 응답 변환
func NewMessageRespond(m *model.Message) *MessageRespond {
	return &MessageRespond{
		Uuid:       m.Uuid,
		ChatRoomId: m.ChatRoomId,
		SenderId:   m.SenderId,
		Content:    m.Content,
		CreatedAt:  m.CreatedAt,
	}
}
