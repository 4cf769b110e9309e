// relay.go
// 수신 메시지의 중계 파이프라인: 저장 -> 참여자 검증 -> 브로커 발행
package chat

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/dto/request"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/model"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/pkg/errorx"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/pkg/util/snowflake"
)

// relayError 발신자에게만 보내는 에러 페이로드
type relayError struct {
	Error      string `json:"error"`
	ChatRoomId uint   `json:"chatRoomId,omitempty"`
}

// Relay 수신 메시지 한 건을 중계한다
//
// 순서가 중요하다:
//  1. 발신자/방 존재 확인 후 메시지 저장 (실패 시 중단)
//  2. 활성 참여자 검증. 실패하면 발신자에게만 에러를 보내고 끝낸다
//  3. 브로커 발행. 구독자들이 각 인스턴스의 로컬 접속자에게 전달한다
func (s *ChatServer) Relay(msg *request.ChatMessageRequest) {
	if _, err := s.repos.Member.FindById(msg.SenderId); err != nil {
		if errorx.IsNotFound(err) {
			s.notifySender(msg.SenderId, &relayError{Error: "존재하지 않는 회원입니다."})
		} else {
			zap.L().Error("발신자 조회 실패", zap.Uint("senderId", msg.SenderId), zap.Error(err))
			s.notifySender(msg.SenderId, &relayError{Error: "메시지 전송에 실패했습니다."})
		}
		return
	}
	if _, err := s.repos.ChatRoom.FindById(msg.ChatRoomId); err != nil {
		if errorx.IsNotFound(err) {
			s.notifySender(msg.SenderId, &relayError{Error: "존재하지 않는 채팅방입니다.", ChatRoomId: msg.ChatRoomId})
		} else {
			zap.L().Error("채팅방 조회 실패", zap.Uint("roomId", msg.ChatRoomId), zap.Error(err))
		}
		return
	}

	message := &model.Message{
		Uuid:       snowflake.GenerateID(),
		ChatRoomId: msg.ChatRoomId,
		SenderId:   msg.SenderId,
		Content:    msg.Content,
		CreatedAt:  time.Now(),
	}
	if err := s.repos.Message.Create(message); err != nil {
		zap.L().Error("메시지 저장 실패", zap.Int64("uuid", message.Uuid), zap.Error(err))
		s.notifySender(msg.SenderId, &relayError{Error: "메시지 저장에 실패했습니다.", ChatRoomId: msg.ChatRoomId})
		return
	}

	// 저장 이후의 참여자 검증: 실패해도 방에는 아무것도 방송되지 않는다
	active, err := s.repos.RoomParticipant.IsActiveParticipant(msg.ChatRoomId, msg.SenderId)
	if err != nil {
		zap.L().Error("참여자 확인 실패", zap.Uint("roomId", msg.ChatRoomId), zap.Error(err))
		s.notifySender(msg.SenderId, &relayError{Error: "메시지 전송에 실패했습니다.", ChatRoomId: msg.ChatRoomId})
		return
	}
	if !active {
		s.notifySender(msg.SenderId, &relayError{
			Error:      "채팅방 참여자만 메시지를 보낼 수 있습니다.",
			ChatRoomId: msg.ChatRoomId,
		})
		return
	}

	payload, err := EncodePayload(&RelayPayload{
		Uuid:       message.Uuid,
		ChatRoomId: message.ChatRoomId,
		SenderId:   message.SenderId,
		SenderName: msg.Sender,
		Content:    message.Content,
		CreatedAt:  message.CreatedAt,
	})
	if err != nil {
		zap.L().Error("중계 페이로드 인코딩 실패", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.broker.Publish(ctx, payload); err != nil {
		zap.L().Error("브로커 발행 실패", zap.Int64("uuid", message.Uuid), zap.Error(err))
		s.notifySender(msg.SenderId, &relayError{Error: "메시지 전송에 실패했습니다.", ChatRoomId: msg.ChatRoomId})
	}
}

// notifySender 발신자에게만 에러를 알린다. 다른 참여자에게는 아무것도 가지 않는다
// 알림 자체가 실패해도 (연결이 이미 끊긴 경우 등) 중계 루프는 계속된다
func (s *ChatServer) notifySender(senderId uint, e *relayError) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Warn("발신자 에러 알림 실패", zap.Uint("senderId", senderId), zap.Any("recover", r))
		}
	}()

	client := s.GetClient(senderId)
	if client == nil {
		return
	}
	data, err := json.Marshal(e)
	if err != nil {
		zap.L().Error("에러 페이로드 인코딩 실패", zap.Error(err))
		return
	}
	client.TrySend(data)
}
