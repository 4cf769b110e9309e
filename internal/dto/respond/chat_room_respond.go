package respond

import (
	"time"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/model"
)

// ChatRoomRespond 채팅방 응답
type ChatRoomRespond struct {
	Id        uint      `json:"id"`
	PostId    *uint     `json:"postId,omitempty"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewChatRoomRespond 모델 -> 응답 변환
func NewChatRoomRespond(r *model.ChatRoom) *ChatRoomRespond {
	return &ChatRoomRespond{
		Id:        r.ID,
		PostId:    r.PostId,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
	}
}
