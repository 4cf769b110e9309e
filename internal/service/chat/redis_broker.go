// redis_broker.go
// Redis pub/sub 기반 브로커. 다중 인스턴스 배포에서 인스턴스 간 메시지를 흘려보낸다
// Redis pub/sub 은 at-most-once 이지만 구독이 살아 있는 동안은 모든 구독자에게 전달된다
package chat

import (
	"context"
	"sync"

	"go.uber.org/zap"

	myredis "github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/dao/redis"
)

// RedisBroker MessageBroker 의 Redis pub/sub 구현
type RedisBroker struct {
	channel   string
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewRedisBroker 생성자. channel 은 설정의 ChatTopic
func NewRedisBroker(channel string) *RedisBroker {
	return &RedisBroker{channel: channel}
}

// Publish Redis 채널에 발행
func (b *RedisBroker) Publish(ctx context.Context, payload []byte) error {
	return myredis.Publish(ctx, b.channel, payload)
}

// Start 구독 goroutine 시작
// 모든 인스턴스가 같은 채널을 구독하므로 발행된 메시지는 전 인스턴스에 도달한다
func (b *RedisBroker) Start(handler func(payload []byte)) {
	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel

	pubsub := myredis.Subscribe(ctx, b.channel)
	go func() {
		defer pubsub.Close()
		zap.L().Info("redis broker 구독 시작", zap.String("channel", b.channel))
		ch := pubsub.Channel()
		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					return
				}
				handler([]byte(msg.Payload))
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Close 구독 종료
func (b *RedisBroker) Close() error {
	b.closeOnce.Do(func() {
		if b.cancel != nil {
			b.cancel()
		}
	})
	return nil
}
