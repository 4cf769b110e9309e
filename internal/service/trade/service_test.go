package trade

import (
	"errors"
	"sync"
	"testing"

	"gorm.io/gorm"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/dao/mysql/repository"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/dto/request"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/model"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/pkg/errorx"
)

// ==================== 테스트용 가짜 구현 ====================

// fakeTransactor DB 행 잠금과 같은 직렬화를 뮤텍스로 흉내 낸다
type fakeTransactor struct {
	mu    sync.Mutex
	repos *repository.Repositories
}

func (f *fakeTransactor) Transaction(fn func(tx *repository.Repositories) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(f.repos)
}

type fakePostRepo struct {
	repository.PostRepository
	posts map[uint]*model.Post
}

func (f *fakePostRepo) FindById(id uint) (*model.Post, error) {
	return f.FindByIdForUpdate(id)
}

func (f *fakePostRepo) FindByIdForUpdate(id uint) (*model.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, errorx.Wrapf(gorm.ErrRecordNotFound, errorx.CodeNotFound, "post %d", id)
	}
	cp := *p
	return &cp, nil
}

func (f *fakePostRepo) Update(post *model.Post) error {
	f.posts[post.ID] = post
	return nil
}

type fakeMemberRepo struct {
	repository.MemberRepository
	members map[uint]*model.Member
}

func (f *fakeMemberRepo) FindById(id uint) (*model.Member, error) {
	m, ok := f.members[id]
	if !ok {
		return nil, errorx.Wrapf(gorm.ErrRecordNotFound, errorx.CodeNotFound, "member %d", id)
	}
	return m, nil
}

type fakeTradeRepo struct {
	repository.TradeRepository
	trades []*model.Trade
	nextId uint
}

func (f *fakeTradeRepo) Create(trade *model.Trade) error {
	// post_id 유니크 인덱스 흉내
	for _, t := range f.trades {
		if t.PostId == trade.PostId {
			return errorx.New(errorx.CodeServerError, "duplicate trade for post")
		}
	}
	f.nextId++
	trade.ID = f.nextId
	f.trades = append(f.trades, trade)
	return nil
}

func (f *fakeTradeRepo) FindById(id uint) (*model.Trade, error) {
	for _, t := range f.trades {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, errorx.Wrapf(gorm.ErrRecordNotFound, errorx.CodeNotFound, "trade %d", id)
}

func (f *fakeTradeRepo) FindByMemberId(memberId uint) ([]model.Trade, error) {
	var out []model.Trade
	for _, t := range f.trades {
		if t.BuyerId == memberId || t.SellerId == memberId {
			out = append(out, *t)
		}
	}
	return out, nil
}

// newTestService 판매자 1번, 구매자 2·3번, SALE 게시글 10번으로 구성한 서비스
func newTestService() (*tradeService, *fakePostRepo, *fakeTradeRepo) {
	postRepo := &fakePostRepo{posts: map[uint]*model.Post{
		10: {Model: gorm.Model{ID: 10}, MemberId: 1, Title: "특허 매물", Price: 1000000, Status: model.PostStatusSale},
	}}
	memberRepo := &fakeMemberRepo{members: map[uint]*model.Member{
		1: {Model: gorm.Model{ID: 1}, Email: "seller@test.com", Status: model.MemberStatusActive},
		2: {Model: gorm.Model{ID: 2}, Email: "buyer@test.com", Status: model.MemberStatusActive},
		3: {Model: gorm.Model{ID: 3}, Email: "buyer2@test.com", Status: model.MemberStatusActive},
	}}
	tradeRepo := &fakeTradeRepo{}

	repos := &repository.Repositories{
		Member: memberRepo,
		Post:   postRepo,
		Trade:  tradeRepo,
	}
	svc := &tradeService{
		repos: repos,
		tx:    &fakeTransactor{repos: repos},
	}
	return svc, postRepo, tradeRepo
}

// ==================== 테스트 ====================

func TestCreateTrade(t *testing.T) {
	svc, postRepo, tradeRepo := newTestService()

	rsp, err := svc.CreateTrade(2, request.CreateTradeRequest{PostId: 10})
	if err != nil {
		t.Fatal(err)
	}
	if rsp.Status != model.TradeStatusCompleted {
		t.Errorf("status = %s, want COMPLETED", rsp.Status)
	}
	if rsp.SellerId != 1 || rsp.BuyerId != 2 {
		t.Errorf("seller/buyer = %d/%d, want 1/2", rsp.SellerId, rsp.BuyerId)
	}
	if rsp.Price != 1000000 {
		t.Errorf("price = %d, want 1000000", rsp.Price)
	}
	if got := postRepo.posts[10].Status; got != model.PostStatusSoldOut {
		t.Errorf("post status = %s, want SOLD_OUT", got)
	}
	if len(tradeRepo.trades) != 1 {
		t.Errorf("trade count = %d, want 1", len(tradeRepo.trades))
	}
}

func TestCreateTradePostNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateTrade(2, request.CreateTradeRequest{PostId: 999})
	if errorx.GetResultCode(err) != errorx.CodeNotFound {
		t.Errorf("result code = %s, want %s", errorx.GetResultCode(err), errorx.CodeNotFound)
	}
}

func TestCreateTradeAlreadySold(t *testing.T) {
	svc, postRepo, _ := newTestService()
	postRepo.posts[10].Status = model.PostStatusSoldOut

	_, err := svc.CreateTrade(2, request.CreateTradeRequest{PostId: 10})
	if errorx.GetResultCode(err) != errorx.CodeBadRequest {
		t.Fatalf("result code = %s, want %s", errorx.GetResultCode(err), errorx.CodeBadRequest)
	}
	var codeErr *errorx.CodeError
	if !errors.As(err, &codeErr) {
		t.Fatalf("unexpected error type: %v", err)
	}
	if codeErr.Msg != "이미 판매된 게시글입니다." {
		t.Errorf("msg = %q, want 이미 판매된 게시글입니다.", codeErr.Msg)
	}
}

// 자기 게시글 구매 금지. 상태 검사(400)가 소유자 검사(403)보다 먼저다
func TestCreateTradeSelfPurchase(t *testing.T) {
	svc, _, tradeRepo := newTestService()

	_, err := svc.CreateTrade(1, request.CreateTradeRequest{PostId: 10})
	if errorx.GetResultCode(err) != errorx.CodeForbidden {
		t.Errorf("result code = %s, want %s", errorx.GetResultCode(err), errorx.CodeForbidden)
	}
	if len(tradeRepo.trades) != 0 {
		t.Errorf("trade count = %d, want 0", len(tradeRepo.trades))
	}
}

// 판매 완료된 자기 게시글 구매 시도: 403 이 아니라 400 이 나와야 한다
func TestCreateTradeSoldOutSelfPurchase(t *testing.T) {
	svc, postRepo, _ := newTestService()
	postRepo.posts[10].Status = model.PostStatusSoldOut

	_, err := svc.CreateTrade(1, request.CreateTradeRequest{PostId: 10})
	if errorx.GetResultCode(err) != errorx.CodeBadRequest {
		t.Errorf("result code = %s, want %s", errorx.GetResultCode(err), errorx.CodeBadRequest)
	}
}

func TestCreateTradeBuyerNotFound(t *testing.T) {
	svc, postRepo, _ := newTestService()

	_, err := svc.CreateTrade(999, request.CreateTradeRequest{PostId: 10})
	if errorx.GetResultCode(err) != errorx.CodeNotFound {
		t.Errorf("result code = %s, want %s", errorx.GetResultCode(err), errorx.CodeNotFound)
	}
	// 선행 조건 실패 시 게시글은 그대로 SALE
	if got := postRepo.posts[10].Status; got != model.PostStatusSale {
		t.Errorf("post status = %s, want SALE", got)
	}
}

// 동시 구매 경쟁: 둘 중 정확히 한 명만 체결된다
func TestCreateTradeConcurrentBuyers(t *testing.T) {
	svc, postRepo, tradeRepo := newTestService()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, buyerId := range []uint{2, 3} {
		wg.Add(1)
		go func(i int, buyerId uint) {
			defer wg.Done()
			_, errs[i] = svc.CreateTrade(buyerId, request.CreateTradeRequest{PostId: 10})
		}(i, buyerId)
	}
	wg.Wait()

	success, alreadySold := 0, 0
	for _, err := range errs {
		if err == nil {
			success++
			continue
		}
		if errorx.GetResultCode(err) == errorx.CodeBadRequest {
			alreadySold++
			continue
		}
		t.Fatalf("unexpected error: %v", err)
	}
	if success != 1 || alreadySold != 1 {
		t.Errorf("success/alreadySold = %d/%d, want 1/1", success, alreadySold)
	}
	if len(tradeRepo.trades) != 1 {
		t.Errorf("trade count = %d, want 1", len(tradeRepo.trades))
	}
	if got := postRepo.posts[10].Status; got != model.PostStatusSoldOut {
		t.Errorf("post status = %s, want SOLD_OUT", got)
	}
}

func TestGetTradeOnlyParties(t *testing.T) {
	svc, _, _ := newTestService()
	rsp, err := svc.CreateTrade(2, request.CreateTradeRequest{PostId: 10})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.GetTrade(2, rsp.Id); err != nil {
		t.Errorf("buyer should see trade: %v", err)
	}
	if _, err := svc.GetTrade(1, rsp.Id); err != nil {
		t.Errorf("seller should see trade: %v", err)
	}
	if _, err := svc.GetTrade(3, rsp.Id); errorx.GetResultCode(err) != errorx.CodeForbidden {
		t.Errorf("third party result code = %s, want %s", errorx.GetResultCode(err), errorx.CodeForbidden)
	}
}
