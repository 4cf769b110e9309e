// Package handler HTTP 요청 처리기
// 본 파일은 회원 관련 API 를 처리한다
package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/dto/request"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/service"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/service/storage"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/pkg/errorx"
)

// MemberHandler 회원 요청 처리기
type MemberHandler struct {
	memberSvc service.MemberService
	store     storage.Storage
}

// NewMemberHandler 생성자
func NewMemberHandler(memberSvc service.MemberService, store storage.Storage) *MemberHandler {
	return &MemberHandler{memberSvc: memberSvc, store: store}
}

// Signup 회원 가입
// POST /api/members/signup
func (h *MemberHandler) Signup(c *gin.Context) {
	var req request.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.memberSvc.Signup(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleCreated(c, "회원 가입이 완료되었습니다.", data)
}

// Login 로그인
// POST /api/members/login
func (h *MemberHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.memberSvc.Login(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, "로그인되었습니다.", data)
}

// Refresh 토큰 재발급
// POST /api/members/refresh
func (h *MemberHandler) Refresh(c *gin.Context) {
	var req request.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.memberSvc.RefreshToken(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, "토큰이 재발급되었습니다.", data)
}

// Me 내 정보 조회
// GET /api/members/me
func (h *MemberHandler) Me(c *gin.Context) {
	data, err := h.memberSvc.GetMember(CurrentMemberId(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, "조회되었습니다.", data)
}

// Update 내 정보 수정
// PUT /api/members/me
func (h *MemberHandler) Update(c *gin.Context) {
	var req request.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.memberSvc.UpdateMember(CurrentMemberId(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, "수정되었습니다.", data)
}

// Delete 회원 탈퇴
// DELETE /api/members/me
func (h *MemberHandler) Delete(c *gin.Context) {
	if err := h.memberSvc.DeleteMember(CurrentMemberId(c)); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, "탈퇴되었습니다.", nil)
}

// UploadProfileImage 프로필 이미지 업로드
// POST /api/members/me/profile-image (multipart: image)
func (h *MemberHandler) UploadProfileImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		HandleError(c, errorx.New(errorx.CodeInvalidParam, "이미지 파일이 필요합니다."))
		return
	}

	url, err := h.store.Store(fileHeader, "profile", "image/")
	if err != nil {
		HandleError(c, err)
		return
	}
	if err := h.memberSvc.UpdateProfileImage(CurrentMemberId(c), url); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, "프로필 이미지가 변경되었습니다.", gin.H{"profileUrl": url})
}
