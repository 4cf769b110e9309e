package router

import (
	"github.com/gin-gonic/gin"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/infrastructure/middleware"
)

// registerAdminRoutes 관리자 라우트. JWT 인증 + 관리자 역할 검사
func (rt *Router) registerAdminRoutes(r *gin.Engine) {
	admin := r.Group("/api/admin", middleware.JWTAuth(), middleware.AdminOnly())
	{
		admin.GET("/members", rt.handlers.Admin.MemberList)
		admin.PATCH("/members/:memberId/block", rt.handlers.Admin.BlockMember)
	}
}
