// WebSocket 접속 처리
// 브라우저 WebSocket API 는 커스텀 헤더를 못 붙이므로 토큰은 쿼리로 받는다
package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/service"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/service/chat"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/pkg/errorx"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/pkg/util/jwt"
)

// WsHandler WebSocket 접속 처리기
type WsHandler struct {
	memberSvc service.MemberService
}

// NewWsHandler 생성자
func NewWsHandler(memberSvc service.MemberService) *WsHandler {
	return &WsHandler{memberSvc: memberSvc}
}

// Connect WebSocket 연결
// GET /ws?token=<access token>
// 업그레이드 전에 토큰을 검증하고, 통과하면 채팅 서버에 연결을 등록한다
func (h *WsHandler) Connect(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		HandleError(c, errorx.ErrUnauthorized)
		return
	}
	claims, err := jwt.ParseToken(token)
	if err != nil || claims.Subject != "access_token" {
		HandleError(c, errorx.New(errorx.CodeUnauthorized, "유효하지 않은 토큰입니다."))
		return
	}

	member, err := h.memberSvc.GetMember(claims.MemberId)
	if err != nil {
		HandleError(c, err)
		return
	}

	chat.NewClientInit(c, chat.GlobalChatServer, member.Id, member.Name)
}
