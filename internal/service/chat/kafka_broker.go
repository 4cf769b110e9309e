// kafka_broker.go
// Kafka 기반 브로커. 다중 인스턴스 배포용
// 컨슈머 그룹 없이 각 인스턴스가 파티션을 직접 읽으므로
// 발행된 메시지는 모든 인스턴스에 전달된다 (그룹을 쓰면 한 인스턴스만 받게 된다)
package chat

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// KafkaBroker MessageBroker 의 Kafka 구현
type KafkaBroker struct {
	writer    *kafka.Writer
	reader    *kafka.Reader
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewKafkaBroker 생성자
// addr 는 "host:port", topic 은 설정의 ChatTopic
func NewKafkaBroker(addr, topic string) *KafkaBroker {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(addr),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
		// 중계 메시지는 소량 다건이므로 배치 대기를 줄인다
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:   []string{addr},
		Topic:     topic,
		Partition: 0,
		MinBytes:  1,
		MaxBytes:  10e6,
		MaxWait:   500 * time.Millisecond,
	})
	// 과거 메시지 재생 없이 접속 시점 이후만 읽는다
	if err := reader.SetOffset(kafka.LastOffset); err != nil {
		zap.L().Warn("kafka offset 설정 실패", zap.Error(err))
	}

	return &KafkaBroker{writer: writer, reader: reader}
}

// Publish Kafka 토픽에 발행
func (b *KafkaBroker) Publish(ctx context.Context, payload []byte) error {
	return b.writer.WriteMessages(ctx, kafka.Message{Value: payload})
}

// Start 소비 goroutine 시작
func (b *KafkaBroker) Start(handler func(payload []byte)) {
	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel

	go func() {
		zap.L().Info("kafka broker 소비 루프 시작", zap.String("topic", b.reader.Config().Topic))
		for {
			msg, err := b.reader.ReadMessage(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
					return
				}
				zap.L().Error("kafka 메시지 수신 실패", zap.Error(err))
				// 일시 장애 시 재시도 간격
				time.Sleep(time.Second)
				continue
			}
			handler(msg.Value)
		}
	}()
}

// Close 리더/라이터 종료
func (b *KafkaBroker) Close() error {
	var firstErr error
	b.closeOnce.Do(func() {
		if b.cancel != nil {
			b.cancel()
		}
		if err := b.reader.Close(); err != nil {
			firstErr = err
		}
		if err := b.writer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	})
	return firstErr
}
