package router

import (
	"github.com/gin-gonic/gin"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/infrastructure/middleware"
)

// registerMemberRoutes 회원 라우트
func (rt *Router) registerMemberRoutes(r *gin.Engine) {
	// 공개 라우트 (인증 불필요)
	r.POST("/api/members/signup", rt.handlers.Member.Signup)
	r.POST("/api/members/login", rt.handlers.Member.Login)
	r.POST("/api/members/refresh", rt.handlers.Member.Refresh)

	// 인증 필요 라우트
	me := r.Group("/api/members", middleware.JWTAuth())
	{
		me.GET("/me", rt.handlers.Member.Me)
		me.PUT("/me", rt.handlers.Member.Update)
		me.DELETE("/me", rt.handlers.Member.Delete)
		me.POST("/me/profile-image", rt.handlers.Member.UploadProfileImage)
	}
}
