// 관리자 전용 API
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/dto/request"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/service"
)

// AdminHandler 관리자 요청 처리기
type AdminHandler struct {
	memberSvc service.MemberService
}

// NewAdminHandler 생성자
func NewAdminHandler(memberSvc service.MemberService) *AdminHandler {
	return &AdminHandler{memberSvc: memberSvc}
}

// MemberList 회원 목록 (페이지네이션)
// GET /api/admin/members?page=1&pageSize=20
func (h *AdminHandler) MemberList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	members, total, err := h.memberSvc.GetMemberList(page, pageSize)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, "조회되었습니다.", gin.H{
		"members": members,
		"total":   total,
		"page":    page,
	})
}

// BlockMember 회원 차단/해제
// PATCH /api/admin/members/:memberId/block
func (h *AdminHandler) BlockMember(c *gin.Context) {
	memberId, err := ParseUintParam(c, "memberId")
	if err != nil {
		HandleError(c, err)
		return
	}
	var req request.BlockMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	if err := h.memberSvc.BlockMember(memberId, req.Blocked); err != nil {
		HandleError(c, err)
		return
	}
	msg := "차단이 해제되었습니다."
	if req.Blocked {
		msg = "차단되었습니다."
	}
	HandleSuccess(c, msg, nil)
}
