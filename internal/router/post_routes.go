package router

import (
	"github.com/gin-gonic/gin"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/infrastructure/middleware"
)

// registerPostRoutes 게시글 라우트
// 목록/상세는 공개, 등록/수정/삭제는 인증 필요
func (rt *Router) registerPostRoutes(r *gin.Engine) {
	r.GET("/api/posts", rt.handlers.Post.List)

	authed := r.Group("/api/posts", middleware.JWTAuth())
	{
		authed.POST("", rt.handlers.Post.Create)
		authed.GET("/me", rt.handlers.Post.MyList)
		authed.GET("/:postId", rt.handlers.Post.Get)
		authed.PUT("/:postId", rt.handlers.Post.Update)
		authed.DELETE("/:postId", rt.handlers.Post.Delete)
	}
}
