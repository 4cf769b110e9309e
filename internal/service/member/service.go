// Package member 회원 비즈니스 로직
package member

import (
	"go.uber.org/zap"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/dao/mysql/repository"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/dto/request"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/dto/respond"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/model"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/pkg/errorx"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/pkg/util/jwt"
)

// memberService 회원 서비스 구현
type memberService struct {
	repos *repository.Repositories
	cache tokenCache
}

// NewMemberService 생성자. Repository 집합을 주입받는다
func NewMemberService(repos *repository.Repositories) *memberService {
	return &memberService{repos: repos, cache: redisTokenCache{}}
}

// Signup 회원 가입
// 이메일이 이미 있으면 Conflict 에러를 반환한다
func (s *memberService) Signup(req request.SignupRequest) (*respond.MemberRespond, error) {
	exists, err := s.repos.Member.ExistsByEmail(req.Email)
	if err != nil {
		zap.L().Error("이메일 중복 확인 실패", zap.Error(err))
		return nil, errorx.ErrServerError
	}
	if exists {
		return nil, errorx.New(errorx.CodeConflict, "이미 사용 중인 이메일입니다.")
	}

	m := &model.Member{
		Email:       req.Email,
		Name:        req.Name,
		Role:        model.RoleUser,
		Status:      model.MemberStatusActive,
		RawPassword: req.Password, // BeforeSave 에서 해시된다
	}
	if err := s.repos.Member.Create(m); err != nil {
		zap.L().Error("회원 생성 실패", zap.Error(err))
		return nil, errorx.ErrServerError
	}
	return respond.NewMemberRespond(m), nil
}

// Login 이메일/비밀번호 로그인
func (s *memberService) Login(req request.LoginRequest) (*respond.LoginRespond, error) {
	m, err := s.repos.Member.FindByEmail(req.Email)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUnauthorized, "이메일 또는 비밀번호가 올바르지 않습니다.")
		}
		zap.L().Error("회원 조회 실패", zap.Error(err))
		return nil, errorx.ErrServerError
	}
	if !m.CheckPassword(req.Password) {
		return nil, errorx.New(errorx.CodeUnauthorized, "이메일 또는 비밀번호가 올바르지 않습니다.")
	}
	if m.Status != model.MemberStatusActive {
		return nil, errorx.New(errorx.CodeForbidden, "이용할 수 없는 계정입니다.")
	}
	return s.issueTokens(m)
}

// RefreshToken Refresh Token 회전
// 저장된 tokenID 와 일치하는 토큰만 허용하고, 새 tokenID 로 교체해 이전 토큰을 무효화한다
func (s *memberService) RefreshToken(req request.RefreshTokenRequest) (*respond.LoginRespond, error) {
	claims, err := jwt.ParseToken(req.RefreshToken)
	if err != nil || claims.Subject != "refresh_token" {
		return nil, errorx.New(errorx.CodeUnauthorized, "유효하지 않은 토큰입니다.")
	}

	m, err := s.repos.Member.FindById(claims.MemberId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUnauthorized, "유효하지 않은 토큰입니다.")
		}
		zap.L().Error("회원 조회 실패", zap.Error(err))
		return nil, errorx.ErrServerError
	}
	if m.Status != model.MemberStatusActive {
		return nil, errorx.New(errorx.CodeForbidden, "이용할 수 없는 계정입니다.")
	}
	if m.RefreshTokenId == "" || m.RefreshTokenId != claims.TokenID {
		// 이미 회전된 토큰이거나 로그아웃된 세션
		return nil, errorx.New(errorx.CodeUnauthorized, "만료된 토큰입니다. 다시 로그인해 주세요.")
	}
	// 캐시의 tokenID 와도 대조한다. DB 반영 전에 무효화된 세션을 거른다
	// 캐시 미스나 Redis 장애는 DB 판정을 그대로 따른다
	if cached, err := s.cache.Load(claims.MemberId); err == nil && cached != "" && cached != claims.TokenID {
		return nil, errorx.New(errorx.CodeUnauthorized, "만료된 토큰입니다. 다시 로그인해 주세요.")
	}
	return s.issueTokens(m)
}

// issueTokens 토큰 쌍 발급 + tokenID 저장
func (s *memberService) issueTokens(m *model.Member) (*respond.LoginRespond, error) {
	accessToken, err := jwt.GenerateAccessToken(m.ID, m.Email, m.Role)
	if err != nil {
		zap.L().Error("Access Token 생성 실패", zap.Error(err))
		return nil, errorx.ErrServerError
	}
	refreshToken, tokenID, err := jwt.GenerateRefreshToken(m.ID, m.Email, m.Role)
	if err != nil {
		zap.L().Error("Refresh Token 생성 실패", zap.Error(err))
		return nil, errorx.ErrServerError
	}

	m.RefreshTokenId = tokenID
	if err := s.repos.Member.Update(m); err != nil {
		zap.L().Error("Refresh Token ID 저장 실패", zap.Error(err))
		return nil, errorx.ErrServerError
	}

	// Redis 에도 tokenID 를 넣어 둔다. 실패해도 로그인 흐름은 막지 않는다
	s.cache.Store(m.ID, tokenID)

	return &respond.LoginRespond{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Member:       respond.NewMemberRespond(m),
	}, nil
}

// GetMember 회원 단건 조회
func (s *memberService) GetMember(memberId uint) (*respond.MemberRespond, error) {
	m, err := s.repos.Member.FindById(memberId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "존재하지 않는 회원입니다.")
		}
		zap.L().Error("회원 조회 실패", zap.Error(err))
		return nil, errorx.ErrServerError
	}
	return respond.NewMemberRespond(m), nil
}

// UpdateMember 회원 정보 수정
func (s *memberService) UpdateMember(memberId uint, req request.UpdateMemberRequest) (*respond.MemberRespond, error) {
	m, err := s.repos.Member.FindById(memberId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "존재하지 않는 회원입니다.")
		}
		zap.L().Error("회원 조회 실패", zap.Error(err))
		return nil, errorx.ErrServerError
	}

	m.Name = req.Name
	if req.Password != "" {
		m.RawPassword = req.Password
	}
	if err := s.repos.Member.Update(m); err != nil {
		zap.L().Error("회원 수정 실패", zap.Error(err))
		return nil, errorx.ErrServerError
	}
	return respond.NewMemberRespond(m), nil
}

// UpdateProfileImage 프로필 이미지 URL 교체
func (s *memberService) UpdateProfileImage(memberId uint, profileUrl string) error {
	m, err := s.repos.Member.FindById(memberId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "존재하지 않는 회원입니다.")
		}
		zap.L().Error("회원 조회 실패", zap.Error(err))
		return errorx.ErrServerError
	}
	m.ProfileUrl = profileUrl
	if err := s.repos.Member.Update(m); err != nil {
		zap.L().Error("프로필 이미지 갱신 실패", zap.Error(err))
		return errorx.ErrServerError
	}
	return nil
}

// DeleteMember 회원 탈퇴 (soft delete)
// 이미 탈퇴한 회원을 다시 탈퇴시키면 Conflict 에러
func (s *memberService) DeleteMember(memberId uint) error {
	m, err := s.repos.Member.FindById(memberId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "존재하지 않는 회원입니다.")
		}
		zap.L().Error("회원 조회 실패", zap.Error(err))
		return errorx.ErrServerError
	}
	if m.Status == model.MemberStatusDeleted {
		return errorx.New(errorx.CodeConflict, "이미 탈퇴한 회원입니다.")
	}
	if err := s.repos.Member.UpdateStatus(memberId, model.MemberStatusDeleted); err != nil {
		zap.L().Error("회원 탈퇴 처리 실패", zap.Error(err))
		return errorx.ErrServerError
	}

	// 저장된 tokenID 캐시 제거 (실패해도 탈퇴 자체는 성공)
	s.cache.Drop(memberId)
	return nil
}

// GetMemberList 페이지 단위 회원 목록 (관리자용)
func (s *memberService) GetMemberList(page, pageSize int) ([]respond.MemberRespond, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	members, total, err := s.repos.Member.FindAll(page, pageSize)
	if err != nil {
		zap.L().Error("회원 목록 조회 실패", zap.Error(err))
		return nil, 0, errorx.ErrServerError
	}
	list := make([]respond.MemberRespond, 0, len(members))
	for i := range members {
		list = append(list, *respond.NewMemberRespond(&members[i]))
	}
	return list, total, nil
}

// BlockMember 회원 차단/해제 (관리자용)
func (s *memberService) BlockMember(memberId uint, blocked bool) error {
	m, err := s.repos.Member.FindById(memberId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "존재하지 않는 회원입니다.")
		}
		zap.L().Error("회원 조회 실패", zap.Error(err))
		return errorx.ErrServerError
	}
	if m.Status == model.MemberStatusDeleted {
		return errorx.New(errorx.CodeConflict, "탈퇴한 회원은 상태를 바꿀 수 없습니다.")
	}

	status := model.MemberStatusActive
	if blocked {
		status = model.MemberStatusBlocked
	}
	if err := s.repos.Member.UpdateStatus(memberId, status); err != nil {
		zap.L().Error("회원 상태 변경 실패", zap.Error(err))
		return errorx.ErrServerError
	}
	return nil
}
