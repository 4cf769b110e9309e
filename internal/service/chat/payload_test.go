package chat

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDecodePayload(t *testing.T) {
	src := &RelayPayload{
		Uuid:       123456789,
		ChatRoomId: 100,
		SenderId:   2,
		SenderName: "구매자",
		Content:    "안녕하세요",
		CreatedAt:  time.Now().Truncate(time.Second),
	}
	data, err := EncodePayload(src)
	if err != nil {
		t.Fatal(err)
	}

	got, err := DecodePayload(data)
	if err != nil {
		t.Fatal(err)
	}
	if got.Uuid != src.Uuid || got.Content != src.Content || got.ChatRoomId != src.ChatRoomId {
		t.Errorf("got %+v, want %+v", got, src)
	}
}

// 한 번 더 문자열로 감싸인 페이로드도 디코딩된다
func TestDecodePayloadDoubleEncoded(t *testing.T) {
	src := &RelayPayload{Uuid: 42, ChatRoomId: 100, SenderId: 2, Content: "중첩 인코딩"}
	inner, err := EncodePayload(src)
	if err != nil {
		t.Fatal(err)
	}
	outer, err := json.Marshal(string(inner))
	if err != nil {
		t.Fatal(err)
	}

	got, err := DecodePayload(outer)
	if err != nil {
		t.Fatal(err)
	}
	if got.Uuid != 42 || got.Content != "중첩 인코딩" {
		t.Errorf("got %+v", got)
	}
}

func TestDecodePayloadInvalid(t *testing.T) {
	if _, err := DecodePayload([]byte("not json")); err == nil {
		t.Error("잘못된 페이로드가 디코딩됨")
	}
}
