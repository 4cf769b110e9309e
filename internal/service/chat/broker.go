// broker.go
// 메시지 브로커 인터페이스 정의
// 발행과 구독을 추상화해 channel(단일 인스턴스), redis, kafka 구현을 설정으로 교체한다
package chat

import "context"

// MessageBroker 메시지 브로커 인터페이스
type MessageBroker interface {
	// Publish 중계 페이로드를 토픽에 발행한다
	// 발행된 페이로드는 모든 인스턴스의 구독자에게 전달된다 (at-least-once)
	Publish(ctx context.Context, payload []byte) error
	// Start 구독 루프를 시작한다. 수신한 페이로드마다 handler 를 호출한다
	Start(handler func(payload []byte))
	// Close 브로커 자원 해제
	Close() error
}
