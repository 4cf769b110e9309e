package repository

import (
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/model"

	"gorm.io/gorm"
)

type chatRoomRepository struct {
	db *gorm.DB
}

// NewChatRoomRepository 채팅방 Repository 생성
func NewChatRoomRepository(db *gorm.DB) ChatRoomRepository {
	return &chatRoomRepository{db: db}
}

// FindById id 로 채팅방 조회
func (r *chatRoomRepository) FindById(id uint) (*model.ChatRoom, error) {
	var room model.ChatRoom
	if err := r.db.First(&room, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "채팅방 조회 id=%d", id)
	}
	return &room, nil
}

// FindByPostAndMember 게시글 문의방 중 해당 회원이 활성 참여 중인 방 조회
func (r *chatRoomRepository) FindByPostAndMember(postId, memberId uint) (*model.ChatRoom, error) {
	var room model.ChatRoom
	err := r.db.Joins("JOIN room_participant rp ON rp.chat_room_id = chat_room.id").
		Where("chat_room.post_id = ? AND rp.member_id = ? AND rp.is_active = ?", postId, memberId, true).
		First(&room).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "게시글 채팅방 조회 post=%d member=%d", postId, memberId)
	}
	return &room, nil
}

// FindByMemberId 회원이 활성 참여 중인 채팅방 목록
func (r *chatRoomRepository) FindByMemberId(memberId uint) ([]model.ChatRoom, error) {
	var rooms []model.ChatRoom
	err := r.db.Joins("JOIN room_participant rp ON rp.chat_room_id = chat_room.id").
		Where("rp.member_id = ? AND rp.is_active = ?", memberId, true).
		Order("chat_room.id DESC").
		Find(&rooms).Error
	if err != nil {
		return nil, wrapDBError(err, "채팅방 목록 조회")
	}
	return rooms, nil
}

// Create 채팅방 생성
func (r *chatRoomRepository) Create(room *model.ChatRoom) error {
	if err := r.db.Create(room).Error; err != nil {
		return wrapDBError(err, "채팅방 생성")
	}
	return nil
}

// DeleteByPostId 게시글의 채팅방 삭제
func (r *chatRoomRepository) DeleteByPostId(postId uint) error {
	if err := r.db.Where("post_id = ?", postId).Delete(&model.ChatRoom{}).Error; err != nil {
		return wrapDBError(err, "게시글 채팅방 삭제")
	}
	return nil
}
