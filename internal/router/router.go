// Package router HTTP 라우트 등록
// 본 파일은 라우트 등록 진입점으로, 도메인별 라우트 파일을 모은다
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/handler"
)

// Router 라우트 등록기. Handler 집합을 들고 각 도메인 라우트를 펼친다
type Router struct {
	handlers *handler.Handlers
}

// NewRouter 생성자
func NewRouter(handlers *handler.Handlers) *Router {
	return &Router{handlers: handlers}
}

// RegisterRoutes 모든 라우트 등록. https_server.Init 에서 호출된다
func (rt *Router) RegisterRoutes(r *gin.Engine) {
	rt.registerMemberRoutes(r)
	rt.registerAdminRoutes(r)
	rt.registerPostRoutes(r)
	rt.registerFavoriteRoutes(r)
	rt.registerTradeRoutes(r)
	rt.registerChatRoutes(r)
	rt.registerWsRoutes(r)
}
