// conn_manager.go
// WebSocket 연결 생명주기 관리
// 연결 업그레이드, 회원별 연결 테이블, 읽기/쓰기 goroutine 을 담당한다
package chat

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/dto/request"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/pkg/constants"
)

// UserConn 접속 중인 회원 한 명의 WebSocket 연결
type UserConn struct {
	Conn     *websocket.Conn
	MemberId uint
	Name     string
	// SendBack 서버 -> 프런트 전송 채널. Write goroutine 이 소비한다
	SendBack chan []byte

	// mu 와 closed 는 SendBack 닫기와 전송의 경합을 막는다
	// 재접속으로 교체된 연결에 브로커 goroutine 이 전송을 시도할 수 있다
	mu     sync.Mutex
	closed bool
}

// closeSendBack SendBack 채널을 닫는다. 두 번 호출해도 안전하다
func (c *UserConn) closeSendBack() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.SendBack)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  2048,
	WriteBufferSize: 2048,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// read 프런트 -> 서버 수신 루프
// 수신한 메시지를 파싱해 중계 파이프라인에 넘긴다. 에러 시 연결을 끊는다
func (c *UserConn) read(server *ChatServer) {
	defer server.Unregister(c)
	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				zap.L().Warn("ws 비정상 종료", zap.Uint("memberId", c.MemberId), zap.Error(err))
			}
			return
		}

		var msg request.ChatMessageRequest
		if err := json.Unmarshal(raw, &msg); err != nil {
			zap.L().Warn("ws 메시지 파싱 실패", zap.Uint("memberId", c.MemberId), zap.Error(err))
			c.TrySend([]byte(`{"error":"잘못된 메시지 형식입니다."}`))
			continue
		}
		// 발신자 정보는 인증 컨텍스트가 진실이다. 본문 값은 무시하고 덮어쓴다
		msg.SenderId = c.MemberId
		msg.Sender = c.Name

		server.Relay(&msg)
	}
}

// write 서버 -> 프런트 송신 루프
func (c *UserConn) write() {
	for message := range c.SendBack {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			zap.L().Warn("ws 전송 실패", zap.Uint("memberId", c.MemberId), zap.Error(err))
			return
		}
	}
}

// TrySend SendBack 채널에 비차단 전송. 채널이 가득 차면 버리고 false 를 반환한다
// 느린 소비자 한 명이 중계 루프 전체를 막지 않게 한다
// 이미 닫힌(교체된) 연결이면 전송하지 않고 false 를 반환한다
func (c *UserConn) TrySend(message []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.SendBack <- message:
		return true
	default:
		zap.L().Warn("ws 송신 버퍼 가득 참, 메시지 유실", zap.Uint("memberId", c.MemberId))
		return false
	}
}

// NewClientInit WebSocket 연결 수립
// 인증이 끝난 핸들러에서 호출된다. 업그레이드 후 읽기/쓰기 goroutine 을 띄운다
func NewClientInit(c *gin.Context, server *ChatServer, memberId uint, name string) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Error("ws 업그레이드 실패", zap.Error(err))
		return
	}
	client := &UserConn{
		Conn:     conn,
		MemberId: memberId,
		Name:     name,
		SendBack: make(chan []byte, constants.CHANNEL_SIZE),
	}
	server.Register(client)
	go client.read(server)
	go client.write()
	zap.L().Info("ws 연결 성공", zap.Uint("memberId", memberId))
}
