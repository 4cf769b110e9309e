package chat

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/dao/mysql/repository"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/dto/request"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/model"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/pkg/constants"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/pkg/errorx"
)

// ==================== 테스트용 가짜 구현 ====================

type fakeMemberRepo struct {
	repository.MemberRepository
	members map[uint]*model.Member
	// findErr 설정 시 조회가 이 에러로 실패한다 (장애 시나리오용)
	findErr error
}

func (f *fakeMemberRepo) FindById(id uint) (*model.Member, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	m, ok := f.members[id]
	if !ok {
		return nil, errorx.Wrapf(gorm.ErrRecordNotFound, errorx.CodeNotFound, "member %d", id)
	}
	return m, nil
}

type fakeChatRoomRepo struct {
	repository.ChatRoomRepository
	rooms map[uint]*model.ChatRoom
}

func (f *fakeChatRoomRepo) FindById(id uint) (*model.ChatRoom, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, errorx.Wrapf(gorm.ErrRecordNotFound, errorx.CodeNotFound, "room %d", id)
	}
	return r, nil
}

type fakeMessageRepo struct {
	repository.MessageRepository
	mu       sync.Mutex
	messages []*model.Message
}

func (f *fakeMessageRepo) Create(message *model.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeMessageRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.messages)
}

type fakeParticipantRepo struct {
	repository.RoomParticipantRepository
	// active[roomId] = 활성 참여자 집합
	active map[uint]map[uint]bool
}

func (f *fakeParticipantRepo) IsActiveParticipant(chatRoomId, memberId uint) (bool, error) {
	return f.active[chatRoomId][memberId], nil
}

func (f *fakeParticipantRepo) FindActiveByRoom(chatRoomId uint) ([]model.RoomParticipant, error) {
	var out []model.RoomParticipant
	for memberId := range f.active[chatRoomId] {
		out = append(out, model.RoomParticipant{ChatRoomId: chatRoomId, MemberId: memberId, IsActive: true})
	}
	return out, nil
}

// newTestServer 방 100번에 회원 1, 2 가 참여, 회원 3 은 비참여자
func newTestServer() (*ChatServer, *fakeMessageRepo) {
	msgRepo := &fakeMessageRepo{}
	repos := &repository.Repositories{
		Member: &fakeMemberRepo{members: map[uint]*model.Member{
			1: {Model: gorm.Model{ID: 1}, Name: "판매자"},
			2: {Model: gorm.Model{ID: 2}, Name: "구매자"},
			3: {Model: gorm.Model{ID: 3}, Name: "외부인"},
		}},
		ChatRoom: &fakeChatRoomRepo{rooms: map[uint]*model.ChatRoom{
			100: {Model: gorm.Model{ID: 100}, Name: "[문의] 특허 매물"},
		}},
		Message: msgRepo,
		RoomParticipant: &fakeParticipantRepo{active: map[uint]map[uint]bool{
			100: {1: true, 2: true},
		}},
	}
	server := NewChatServer(repos, NewChannelBroker())
	server.Start()
	return server, msgRepo
}

// newTestConn 네트워크 없이 SendBack 채널만 쓰는 연결
func newTestConn(memberId uint, name string) *UserConn {
	return &UserConn{
		MemberId: memberId,
		Name:     name,
		SendBack: make(chan []byte, constants.CHANNEL_SIZE),
	}
}

// recvTimeout SendBack 에서 한 건 수신 (타임아웃 포함)
func recvTimeout(t *testing.T, c *UserConn) []byte {
	t.Helper()
	select {
	case data := <-c.SendBack:
		return data
	case <-time.After(2 * time.Second):
		t.Fatal("메시지 수신 대기 시간 초과")
		return nil
	}
}

// ==================== 테스트 ====================

// 참여자가 보낸 메시지는 저장되고 방의 모든 접속 참여자(본인 포함)에게 전달된다
func TestRelayFanOut(t *testing.T) {
	server, msgRepo := newTestServer()
	defer server.Close()

	seller := newTestConn(1, "판매자")
	buyer := newTestConn(2, "구매자")
	server.Register(seller)
	server.Register(buyer)

	server.Relay(&request.ChatMessageRequest{
		Sender: "구매자", SenderId: 2, Content: "가격 조정 가능한가요?", ChatRoomId: 100,
	})

	for _, conn := range []*UserConn{seller, buyer} {
		data := recvTimeout(t, conn)
		p, err := DecodePayload(data)
		if err != nil {
			t.Fatal(err)
		}
		if p.Content != "가격 조정 가능한가요?" {
			t.Errorf("content = %q", p.Content)
		}
		if p.SenderId != 2 || p.ChatRoomId != 100 {
			t.Errorf("sender/room = %d/%d, want 2/100", p.SenderId, p.ChatRoomId)
		}
		if p.Uuid == 0 {
			t.Error("uuid 가 비어 있음")
		}
	}
	if msgRepo.count() != 1 {
		t.Errorf("저장된 메시지 = %d건, want 1", msgRepo.count())
	}
}

// 비참여자의 메시지는 방송되지 않고 발신자에게만 에러가 간다
func TestRelayRejectsNonParticipant(t *testing.T) {
	server, _ := newTestServer()
	defer server.Close()

	seller := newTestConn(1, "판매자")
	outsider := newTestConn(3, "외부인")
	server.Register(seller)
	server.Register(outsider)

	server.Relay(&request.ChatMessageRequest{
		Sender: "외부인", SenderId: 3, Content: "끼어들기", ChatRoomId: 100,
	})

	data := recvTimeout(t, outsider)
	var e relayError
	if err := json.Unmarshal(data, &e); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(e.Error, "참여자만 메시지를 보낼 수 있습니다") {
		t.Errorf("error = %q, 참여자 에러 메시지가 아님", e.Error)
	}

	// 판매자에게는 아무것도 가지 않는다
	select {
	case data := <-seller.SendBack:
		t.Errorf("비참여자 메시지가 방송됨: %s", data)
	case <-time.After(300 * time.Millisecond):
	}
}

// 퇴장(비활성) 참여자도 비참여자와 동일하게 거부된다
func TestRelayRejectsLeftParticipant(t *testing.T) {
	server, _ := newTestServer()
	defer server.Close()

	participantRepo := server.repos.RoomParticipant.(*fakeParticipantRepo)
	participantRepo.active[100][2] = false

	buyer := newTestConn(2, "구매자")
	server.Register(buyer)

	server.Relay(&request.ChatMessageRequest{
		Sender: "구매자", SenderId: 2, Content: "퇴장 후 발신", ChatRoomId: 100,
	})

	data := recvTimeout(t, buyer)
	var e relayError
	if err := json.Unmarshal(data, &e); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(e.Error, "참여자만 메시지를 보낼 수 있습니다") {
		t.Errorf("error = %q", e.Error)
	}
}

// 존재하지 않는 방으로 보내면 저장 없이 발신자에게 에러
func TestRelayRoomNotFound(t *testing.T) {
	server, msgRepo := newTestServer()
	defer server.Close()

	buyer := newTestConn(2, "구매자")
	server.Register(buyer)

	server.Relay(&request.ChatMessageRequest{
		Sender: "구매자", SenderId: 2, Content: "어디로", ChatRoomId: 999,
	})

	data := recvTimeout(t, buyer)
	var e relayError
	if err := json.Unmarshal(data, &e); err != nil {
		t.Fatal(err)
	}
	if e.Error != "존재하지 않는 채팅방입니다." {
		t.Errorf("error = %q", e.Error)
	}
	if msgRepo.count() != 0 {
		t.Errorf("저장된 메시지 = %d건, want 0", msgRepo.count())
	}
}

// 발신자 조회의 일시 장애는 "존재하지 않는 회원" 으로 둔갑하지 않는다
func TestRelaySenderLookupFailure(t *testing.T) {
	server, msgRepo := newTestServer()
	defer server.Close()

	memberRepo := server.repos.Member.(*fakeMemberRepo)
	memberRepo.findErr = errorx.Wrap(errors.New("connection refused"), errorx.CodeServerError, "회원 조회 실패")

	buyer := newTestConn(2, "구매자")
	server.Register(buyer)

	server.Relay(&request.ChatMessageRequest{
		Sender: "구매자", SenderId: 2, Content: "접속 확인", ChatRoomId: 100,
	})

	data := recvTimeout(t, buyer)
	var e relayError
	if err := json.Unmarshal(data, &e); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(e.Error, "존재하지 않는 회원") {
		t.Errorf("일시 장애가 미존재 회원으로 보고됨: %q", e.Error)
	}
	if e.Error != "메시지 전송에 실패했습니다." {
		t.Errorf("error = %q", e.Error)
	}
	if msgRepo.count() != 0 {
		t.Errorf("저장된 메시지 = %d건, want 0", msgRepo.count())
	}
}

// 팬아웃 도중 같은 회원이 재접속해 연결이 교체되어도 패닉 없이 동작한다
// 닫힌 이전 연결로의 전송은 조용히 무시되고, 새 연결은 계속 수신한다
func TestRegisterReplaceDuringFanOut(t *testing.T) {
	server, _ := newTestServer()
	defer server.Close()

	old := newTestConn(2, "구매자")
	server.Register(old)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			server.Relay(&request.ChatMessageRequest{
				Sender: "판매자", SenderId: 1, Content: "재고 문의", ChatRoomId: 100,
			})
		}
	}()

	// 팬아웃과 동시에 재접속: 이전 연결의 SendBack 이 닫힌다
	replacement := newTestConn(2, "구매자")
	server.Register(replacement)
	<-done

	if old.TrySend([]byte("x")) {
		t.Error("닫힌 연결로 전송이 성공함")
	}

	server.Relay(&request.ChatMessageRequest{
		Sender: "구매자", SenderId: 2, Content: "교체 후 수신", ChatRoomId: 100,
	})
	for {
		p, err := DecodePayload(recvTimeout(t, replacement))
		if err != nil {
			t.Fatal(err)
		}
		if p.Content == "교체 후 수신" {
			break
		}
	}
}

// 발신자 연결이 로컬에 없어도 에러 알림은 조용히 넘어간다
func TestNotifySenderWithoutConnection(t *testing.T) {
	server, _ := newTestServer()
	defer server.Close()

	// 패닉 없이 리턴하면 된다
	server.Relay(&request.ChatMessageRequest{
		Sender: "외부인", SenderId: 3, Content: "유령 발신", ChatRoomId: 100,
	})
}
