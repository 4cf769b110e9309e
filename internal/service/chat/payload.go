// Package chat 실시간 채팅 중계 계층
// payload.go
// 브로커를 오가는 중계 페이로드의 인코딩/디코딩을 담당한다
package chat

import (
	"encoding/json"
	"strconv"
	"time"
)

// RelayPayload 브로커 토픽으로 발행되는 중계 페이로드
// 모든 서버 인스턴스의 구독자가 이 구조를 수신해 로컬 접속자에게 전달한다
type RelayPayload struct {
	Uuid       int64     `json:"uuid"`
	ChatRoomId uint      `json:"chatRoomId"`
	SenderId   uint      `json:"senderId"`
	SenderName string    `json:"senderName"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

// EncodePayload 페이로드 직렬화
func EncodePayload(p *RelayPayload) ([]byte, error) {
	return json.Marshal(p)
}

// DecodePayload 페이로드 역직렬화
// 일부 브로커 클라이언트는 JSON 을 한 번 더 문자열로 감싸서 전달한다
// ("{\"uuid\":...}" 형태). 첫 바이트가 따옴표면 한 겹 벗기고 다시 디코딩한다
func DecodePayload(data []byte) (*RelayPayload, error) {
	if len(data) > 0 && data[0] == '"' {
		unquoted, err := strconv.Unquote(string(data))
		if err != nil {
			return nil, err
		}
		data = []byte(unquoted)
	}
	var p RelayPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
