package model

import (
	"time"
)

// RoomParticipant 채팅방 참여자 엔티티
// 퇴장은 행 삭제가 아니라 IsActive=false + LeftAt 기록으로 표현한다 (soft leave)
type RoomParticipant struct {
	ID uint `gorm:"primaryKey"`

	ChatRoomId uint `gorm:"column:chat_room_id;not null;uniqueIndex:idx_participant_room_member;comment:채팅방 id"`
	MemberId   uint `gorm:"column:member_id;not null;uniqueIndex:idx_participant_room_member;index;comment:회원 id"`

	// IsActive 현재 참여 중 여부. 메시지 발신 권한 검사에 사용된다
	IsActive bool       `gorm:"column:is_active;not null;default:true;comment:활성 여부"`
	LeftAt   *time.Time `gorm:"column:left_at;comment:퇴장 시각"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName 테이블명 지정
func (RoomParticipant) TableName() string {
	return "room_participant"
}
