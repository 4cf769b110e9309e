// Package chatroom 채팅방/메시지 이력 비즈니스 로직
// 실시간 중계는 chat 패키지가 담당하고, 이 패키지는 방과 이력만 다룬다
package chatroom

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/dao/mysql/repository"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/dto/request"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/dto/respond"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/model"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/pkg/errorx"
)

// chatRoomService 채팅방 서비스 구현
type chatRoomService struct {
	repos *repository.Repositories
	tx    repository.Transactor
}

// NewChatRoomService 생성자
func NewChatRoomService(repos *repository.Repositories) *chatRoomService {
	return &chatRoomService{repos: repos, tx: repos}
}

// CreateRoom 게시글 문의방 생성
// 같은 (게시글, 문의자) 조합의 방이 있으면 새로 만들지 않고 그 방을 반환한다.
// 새 방에는 문의자와 게시글 소유자가 참여자로 등록된다
func (s *chatRoomService) CreateRoom(memberId uint, req request.CreateChatRoomRequest) (*respond.ChatRoomRespond, error) {
	post, err := s.repos.Post.FindById(req.PostId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "존재하지 않는 게시글입니다.")
		}
		zap.L().Error("게시글 조회 실패", zap.Error(err))
		return nil, errorx.ErrServerError
	}
	if post.IsOwnedBy(memberId) {
		return nil, errorx.New(errorx.CodeBadRequest, "본인 게시글에는 문의방을 만들 수 없습니다.")
	}

	// 기존 방 재사용
	if room, err := s.repos.ChatRoom.FindByPostAndMember(req.PostId, memberId); err == nil {
		return respond.NewChatRoomRespond(room), nil
	} else if !errorx.IsNotFound(err) {
		zap.L().Error("채팅방 조회 실패", zap.Error(err))
		return nil, errorx.ErrServerError
	}

	var created *model.ChatRoom
	err = s.tx.Transaction(func(tx *repository.Repositories) error {
		postId := req.PostId
		room := &model.ChatRoom{
			PostId: &postId,
			Name:   fmt.Sprintf("[문의] %s", post.Title),
		}
		if err := tx.ChatRoom.Create(room); err != nil {
			return err
		}
		// 문의자와 판매자를 참여자로 등록
		if err := tx.RoomParticipant.Create(&model.RoomParticipant{
			ChatRoomId: room.ID, MemberId: memberId, IsActive: true,
		}); err != nil {
			return err
		}
		if err := tx.RoomParticipant.Create(&model.RoomParticipant{
			ChatRoomId: room.ID, MemberId: post.MemberId, IsActive: true,
		}); err != nil {
			return err
		}
		created = room
		return nil
	})
	if err != nil {
		zap.L().Error("채팅방 생성 실패", zap.Uint("postId", req.PostId), zap.Error(err))
		return nil, errorx.ErrServerError
	}
	return respond.NewChatRoomRespond(created), nil
}

// GetMyRooms 내가 활성 참여 중인 방 목록
func (s *chatRoomService) GetMyRooms(memberId uint) ([]respond.ChatRoomRespond, error) {
	rooms, err := s.repos.ChatRoom.FindByMemberId(memberId)
	if err != nil {
		zap.L().Error("채팅방 목록 조회 실패", zap.Uint("memberId", memberId), zap.Error(err))
		return nil, errorx.ErrServerError
	}
	list := make([]respond.ChatRoomRespond, 0, len(rooms))
	for i := range rooms {
		list = append(list, *respond.NewChatRoomRespond(&rooms[i]))
	}
	return list, nil
}

// LeaveRoom 방 퇴장 (soft leave)
// 퇴장한 회원은 더 이상 이 방으로 메시지를 보내거나 이력을 볼 수 없다
func (s *chatRoomService) LeaveRoom(memberId, roomId uint) error {
	participant, err := s.repos.RoomParticipant.FindByRoomAndMember(roomId, memberId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "참여하지 않은 채팅방입니다.")
		}
		zap.L().Error("참여자 조회 실패", zap.Error(err))
		return errorx.ErrServerError
	}
	if !participant.IsActive {
		return errorx.New(errorx.CodeConflict, "이미 퇴장한 채팅방입니다.")
	}
	if err := s.repos.RoomParticipant.Deactivate(roomId, memberId); err != nil {
		zap.L().Error("퇴장 처리 실패", zap.Error(err))
		return errorx.ErrServerError
	}
	return nil
}

// GetMessages 방의 메시지 이력 (오래된 순)
// 활성 참여자만 볼 수 있다
func (s *chatRoomService) GetMessages(memberId, roomId uint) ([]respond.MessageRespond, error) {
	if _, err := s.repos.ChatRoom.FindById(roomId); err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "존재하지 않는 채팅방입니다.")
		}
		zap.L().Error("채팅방 조회 실패", zap.Error(err))
		return nil, errorx.ErrServerError
	}

	active, err := s.repos.RoomParticipant.IsActiveParticipant(roomId, memberId)
	if err != nil {
		zap.L().Error("참여자 확인 실패", zap.Error(err))
		return nil, errorx.ErrServerError
	}
	if !active {
		return nil, errorx.New(errorx.CodeForbidden, "채팅방 참여자만 조회할 수 있습니다.")
	}

	messages, err := s.repos.Message.FindByChatRoomId(roomId)
	if err != nil {
		zap.L().Error("메시지 이력 조회 실패", zap.Uint("roomId", roomId), zap.Error(err))
		return nil, errorx.ErrServerError
	}
	list := make([]respond.MessageRespond, 0, len(messages))
	for i := range messages {
		list = append(list, *respond.NewMessageRespond(&messages[i]))
	}
	return list, nil
}
