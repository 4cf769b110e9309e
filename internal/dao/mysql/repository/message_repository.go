package repository

import (
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/model"

	"gorm.io/gorm"
)

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository 메시지 Repository 생성
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// FindByChatRoomId 채팅방 메시지 목록 (오래된 순)
func (r *messageRepository) FindByChatRoomId(chatRoomId uint) ([]model.Message, error) {
	var messages []model.Message
	if err := r.db.Where("chat_room_id = ?", chatRoomId).
		Order("id ASC").
		Find(&messages).Error; err != nil {
		return nil, wrapDBError(err, "메시지 목록 조회")
	}
	return messages, nil
}

// Create 메시지 저장
func (r *messageRepository) Create(message *model.Message) error {
	if err := r.db.Create(message).Error; err != nil {
		return wrapDBError(err, "메시지 저장")
	}
	return nil
}
