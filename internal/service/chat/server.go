// server.go
// 채팅 서버 본체. 회원별 연결 테이블과 브로커 구독 루프를 관리한다
// 메시지 흐름:
//
//	수신 -> 저장 -> 참여자 검증 -> 브로커 발행 -> (모든 인스턴스) 구독 수신 -> 로컬 접속자 전달
package chat

import (
	"sync"

	"go.uber.org/zap"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/config"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/dao/mysql/repository"
)

// ChatServer 채팅 중계 서버
// 인스턴스마다 하나 존재하며, 로컬 WebSocket 접속자들과 브로커 사이를 중계한다
type ChatServer struct {
	broker MessageBroker
	repos  *repository.Repositories

	// clients 회원 ID -> *UserConn. 동시 등록/해제가 잦아 sync.Map 을 쓴다
	clients sync.Map
}

// GlobalChatServer 전역 채팅 서버 인스턴스. main 에서 초기화된다
var GlobalChatServer *ChatServer

// NewChatServer 생성자. 브로커는 설정(messageMode)에 따라 주입된다
func NewChatServer(repos *repository.Repositories, broker MessageBroker) *ChatServer {
	return &ChatServer{
		broker: broker,
		repos:  repos,
	}
}

// NewBrokerFromConfig 설정의 messageMode 로 브로커 구현을 고른다
//   - "channel": 프로세스 내 채널 (단일 인스턴스)
//   - "redis":   Redis pub/sub
//   - "kafka":   Kafka 토픽
func NewBrokerFromConfig(conf *config.Config) MessageBroker {
	switch conf.BrokerConfig.MessageMode {
	case "kafka":
		return NewKafkaBroker(conf.BrokerConfig.KafkaAddr, conf.BrokerConfig.ChatTopic)
	case "redis":
		return NewRedisBroker(conf.BrokerConfig.ChatTopic)
	default:
		return NewChannelBroker()
	}
}

// InitChatServer 전역 인스턴스 초기화 및 구독 루프 기동
func InitChatServer(repos *repository.Repositories, broker MessageBroker) {
	GlobalChatServer = NewChatServer(repos, broker)
	GlobalChatServer.Start()
}

// Start 브로커 구독 루프 시작
func (s *ChatServer) Start() {
	s.broker.Start(s.deliverLocal)
}

// Close 브로커 자원 해제
func (s *ChatServer) Close() error {
	return s.broker.Close()
}

// Register 연결 등록. 같은 회원의 기존 연결이 있으면 끊고 교체한다
func (s *ChatServer) Register(client *UserConn) {
	if old, loaded := s.clients.LoadAndDelete(client.MemberId); loaded {
		oldConn := old.(*UserConn)
		if oldConn.Conn != nil {
			_ = oldConn.Conn.Close()
		}
		oldConn.closeSendBack()
	}
	s.clients.Store(client.MemberId, client)
}

// Unregister 연결 해제. 이미 교체된 연결이면 손대지 않는다
func (s *ChatServer) Unregister(client *UserConn) {
	if cur, ok := s.clients.Load(client.MemberId); ok && cur.(*UserConn) == client {
		s.clients.Delete(client.MemberId)
	}
	client.closeSendBack()
	if client.Conn != nil {
		_ = client.Conn.Close()
	}
}

// GetClient 회원의 로컬 연결 조회. 없으면 nil
func (s *ChatServer) GetClient(memberId uint) *UserConn {
	if v, ok := s.clients.Load(memberId); ok {
		return v.(*UserConn)
	}
	return nil
}

// deliverLocal 브로커에서 수신한 페이로드를 로컬 접속자에게 전달한다
// 방의 활성 참여자 중 이 인스턴스에 접속해 있는 회원에게만 보낸다.
// 발신자 본인의 에코도 같은 경로로 전달된다
func (s *ChatServer) deliverLocal(payload []byte) {
	p, err := DecodePayload(payload)
	if err != nil {
		zap.L().Warn("중계 페이로드 디코딩 실패", zap.Error(err))
		return
	}

	participants, err := s.repos.RoomParticipant.FindActiveByRoom(p.ChatRoomId)
	if err != nil {
		zap.L().Error("참여자 목록 조회 실패", zap.Uint("roomId", p.ChatRoomId), zap.Error(err))
		return
	}

	out, err := EncodePayload(p)
	if err != nil {
		zap.L().Error("중계 페이로드 인코딩 실패", zap.Error(err))
		return
	}
	for _, participant := range participants {
		if client := s.GetClient(participant.MemberId); client != nil {
			client.TrySend(out)
		}
	}
}
