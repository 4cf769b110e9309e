package repository

import (
	"time"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/model"

	"gorm.io/gorm"
)

type roomParticipantRepository struct {
	db *gorm.DB
}

// NewRoomParticipantRepository 채팅방 참여자 Repository 생성
func NewRoomParticipantRepository(db *gorm.DB) RoomParticipantRepository {
	return &roomParticipantRepository{db: db}
}

// FindByRoomAndMember (방, 회원) 참여 행 조회
func (r *roomParticipantRepository) FindByRoomAndMember(chatRoomId, memberId uint) (*model.RoomParticipant, error) {
	var participant model.RoomParticipant
	if err := r.db.First(&participant, "chat_room_id = ? AND member_id = ?", chatRoomId, memberId).Error; err != nil {
		return nil, wrapDBErrorf(err, "참여자 조회 room=%d member=%d", chatRoomId, memberId)
	}
	return &participant, nil
}

// FindActiveByRoom 방의 활성 참여자 목록
func (r *roomParticipantRepository) FindActiveByRoom(chatRoomId uint) ([]model.RoomParticipant, error) {
	var participants []model.RoomParticipant
	if err := r.db.Where("chat_room_id = ? AND is_active = ?", chatRoomId, true).
		Find(&participants).Error; err != nil {
		return nil, wrapDBError(err, "활성 참여자 조회")
	}
	return participants, nil
}

// IsActiveParticipant 회원이 방의 활성 참여자인지 확인
func (r *roomParticipantRepository) IsActiveParticipant(chatRoomId, memberId uint) (bool, error) {
	var count int64
	if err := r.db.Model(&model.RoomParticipant{}).
		Where("chat_room_id = ? AND member_id = ? AND is_active = ?", chatRoomId, memberId, true).
		Count(&count).Error; err != nil {
		return false, wrapDBError(err, "참여자 확인")
	}
	return count > 0, nil
}

// Create 참여자 등록
func (r *roomParticipantRepository) Create(participant *model.RoomParticipant) error {
	if err := r.db.Create(participant).Error; err != nil {
		return wrapDBError(err, "참여자 등록")
	}
	return nil
}

// Deactivate 퇴장 처리
func (r *roomParticipantRepository) Deactivate(chatRoomId, memberId uint) error {
	now := time.Now()
	if err := r.db.Model(&model.RoomParticipant{}).
		Where("chat_room_id = ? AND member_id = ?", chatRoomId, memberId).
		Updates(map[string]interface{}{"is_active": false, "left_at": &now}).Error; err != nil {
		return wrapDBError(err, "참여자 퇴장 처리")
	}
	return nil
}
