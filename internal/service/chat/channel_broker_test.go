package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/pkg/constants"
)

// 소비 루프가 멈춰 버퍼가 가득 차도 Publish 는 호출자를 막지 않는다
func TestChannelBrokerPublishFullBuffer(t *testing.T) {
	b := NewChannelBroker()
	defer b.Close()

	ctx := context.Background()
	for i := 0; i < constants.CHANNEL_SIZE; i++ {
		if err := b.Publish(ctx, []byte("m")); err != nil {
			t.Fatalf("버퍼 용량 내 발행 실패: %v", err)
		}
	}

	done := make(chan error, 1)
	go func() { done <- b.Publish(ctx, []byte("overflow")) }()
	select {
	case err := <-done:
		if !errors.Is(err, ErrBrokerBufferFull) {
			t.Errorf("err = %v, want ErrBrokerBufferFull", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("가득 찬 버퍼에서 Publish 가 차단됨")
	}
}

// 발행된 페이로드는 소비 루프의 핸들러로 전달된다
func TestChannelBrokerDeliver(t *testing.T) {
	b := NewChannelBroker()
	defer b.Close()

	received := make(chan []byte, 1)
	b.Start(func(payload []byte) { received <- payload })

	if err := b.Publish(context.Background(), []byte("hello")); err != nil {
		t.Fatal(err)
	}
	select {
	case data := <-received:
		if string(data) != "hello" {
			t.Errorf("payload = %q", data)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("페이로드 수신 대기 시간 초과")
	}
}
