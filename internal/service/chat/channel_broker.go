// channel_broker.go
// 프로세스 내 채널 기반 브로커. 단일 인스턴스 배포나 개발 환경에서 쓴다
// 외부 의존이 없고, 발행 즉시 같은 프로세스의 구독 루프로 전달된다
package chat

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/pkg/constants"
)

// ErrBrokerBufferFull 채널 버퍼가 가득 차 발행이 거부됨
var ErrBrokerBufferFull = errors.New("브로커 버퍼가 가득 찼습니다")

// ChannelBroker MessageBroker 의 채널 구현
type ChannelBroker struct {
	transmit  chan []byte
	closeOnce sync.Once
	done      chan struct{}
}

// NewChannelBroker 생성자
func NewChannelBroker() *ChannelBroker {
	return &ChannelBroker{
		transmit: make(chan []byte, constants.CHANNEL_SIZE),
		done:     make(chan struct{}),
	}
}

// Publish 채널에 페이로드 투입. 버퍼가 가득 차면 호출자를 막지 않고 에러를 반환한다
func (b *ChannelBroker) Publish(ctx context.Context, payload []byte) error {
	select {
	case b.transmit <- payload:
		return nil
	case <-b.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrBrokerBufferFull
	}
}

// Start 소비 루프 시작
func (b *ChannelBroker) Start(handler func(payload []byte)) {
	go func() {
		zap.L().Info("channel broker 소비 루프 시작")
		for {
			select {
			case payload := <-b.transmit:
				handler(payload)
			case <-b.done:
				return
			}
		}
	}()
}

// Close 소비 루프 종료
func (b *ChannelBroker) Close() error {
	b.closeOnce.Do(func() {
		close(b.done)
	})
	return nil
}
