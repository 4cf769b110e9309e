package member

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/dao/mysql/repository"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/dto/request"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/model"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/pkg/errorx"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/pkg/util/jwt"
)

// ==================== 테스트용 가짜 구현 ====================

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

func (f *fakeMemberRepo) Update(m *model.Member) error {
	f.members[m.ID] = m
	return nil
}

func (f *fakeMemberRepo) UpdateStatus(id uint, status string) error {
	m, ok := f.members[id]
	if !ok {
		return errorx.Wrapf(gorm.ErrRecordNotFound, errorx.CodeNotFound, "member %d", id)
	}
	m.Status = status
	return nil
}

type fakeTokenCache struct {
	stored  map[uint]string
	dropped []uint
	loadErr error
}

func (f *fakeTokenCache) Store(memberId uint, tokenID string) { f.stored[memberId] = tokenID }
func (f *fakeTokenCache) Load(memberId uint) (string, error)  { return f.stored[memberId], f.loadErr }
func (f *fakeTokenCache) Drop(memberId uint) {
	f.dropped = append(f.dropped, memberId)
	delete(f.stored, memberId)
}

// newTestService 회원 1 (활성) 을 심어 둔다
func newTestService() (*memberService, *fakeMemberRepo, *fakeTokenCache) {
	jwt.Init("test-secret-for-refresh-rotation", 30, 168)
	memberRepo := &fakeMemberRepo{members: map[uint]*model.Member{
		1: {Model: gorm.Model{ID: 1}, Email: "seller@test.com", Name: "판매자", Role: model.RoleUser, Status: model.MemberStatusActive},
	}}
	cache := &fakeTokenCache{stored: map[uint]string{}}
	svc := &memberService{
		repos: &repository.Repositories{Member: memberRepo},
		cache: cache,
	}
	return svc, memberRepo, cache
}

// issueRefreshToken 회원 1의 유효한 refresh token 을 발급해 DB/캐시에 심는다
func issueRefreshToken(t *testing.T, repo *fakeMemberRepo, cache *fakeTokenCache) string {
	t.Helper()
	token, tokenID, err := jwt.GenerateRefreshToken(1, "seller@test.com", model.RoleUser)
	if err != nil {
		t.Fatal(err)
	}
	repo.members[1].RefreshTokenId = tokenID
	cache.stored[1] = tokenID
	return token
}

// ==================== 테스트 ====================

// 유효한 refresh token 은 새 토큰 쌍으로 회전되고, DB 와 캐시의 tokenID 가 함께 갱신된다
func TestRefreshTokenRotation(t *testing.T) {
	svc, repo, cache := newTestService()
	token := issueRefreshToken(t, repo, cache)
	before := repo.members[1].RefreshTokenId

	resp, err := svc.RefreshToken(request.RefreshTokenRequest{RefreshToken: token})
	if err != nil {
		t.Fatalf("RefreshToken() error = %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("토큰 쌍이 비어 있음")
	}
	after := repo.members[1].RefreshTokenId
	if after == before {
		t.Error("tokenID 가 회전되지 않음")
	}
	if cache.stored[1] != after {
		t.Errorf("캐시 tokenID = %q, DB tokenID = %q", cache.stored[1], after)
	}
}

// 회전된 이전 토큰의 재사용은 거부된다
func TestRefreshTokenReuseRejected(t *testing.T) {
	svc, repo, cache := newTestService()
	oldToken := issueRefreshToken(t, repo, cache)

	if _, err := svc.RefreshToken(request.RefreshTokenRequest{RefreshToken: oldToken}); err != nil {
		t.Fatalf("첫 회전 실패: %v", err)
	}
	_, err := svc.RefreshToken(request.RefreshTokenRequest{RefreshToken: oldToken})
	if errorx.GetResultCode(err) != errorx.CodeUnauthorized {
		t.Errorf("재사용 결과 = %v, want %s", err, errorx.CodeUnauthorized)
	}
}

// DB 반영 전에 캐시에서 무효화된 세션은 캐시 대조로 거부된다
func TestRefreshTokenRevokedInCache(t *testing.T) {
	svc, repo, cache := newTestService()
	token := issueRefreshToken(t, repo, cache)
	// 다른 인스턴스가 이미 회전을 끝내 캐시에는 새 tokenID 가 올라간 상황
	cache.stored[1] = "rotated-elsewhere"

	_, err := svc.RefreshToken(request.RefreshTokenRequest{RefreshToken: token})
	if errorx.GetResultCode(err) != errorx.CodeUnauthorized {
		t.Errorf("캐시 무효화 세션 결과 = %v, want %s", err, errorx.CodeUnauthorized)
	}
}

// Redis 장애 시 캐시 대조는 건너뛰고 DB 판정을 따른다
func TestRefreshTokenCacheFailureFallsBack(t *testing.T) {
	svc, repo, cache := newTestService()
	token := issueRefreshToken(t, repo, cache)
	cache.stored[1] = "stale-value"
	cache.loadErr = errors.New("connection refused")

	if _, err := svc.RefreshToken(request.RefreshTokenRequest{RefreshToken: token}); err != nil {
		t.Errorf("캐시 장애에서 DB 판정이 무시됨: %v", err)
	}
}

// 탈퇴하면 토큰 캐시도 제거된다
func TestDeleteMemberDropsTokenCache(t *testing.T) {
	svc, repo, cache := newTestService()
	issueRefreshToken(t, repo, cache)

	if err := svc.DeleteMember(1); err != nil {
		t.Fatalf("DeleteMember() error = %v", err)
	}
	if repo.members[1].Status != model.MemberStatusDeleted {
		t.Errorf("status = %s, want DELETED", repo.members[1].Status)
	}
	if len(cache.dropped) != 1 || cache.dropped[0] != 1 {
		t.Errorf("캐시 제거 호출 = %v, want [1]", cache.dropped)
	}
	if _, ok := cache.stored[1]; ok {
		t.Error("탈퇴 후에도 tokenID 캐시가 남아 있음")
	}
}
