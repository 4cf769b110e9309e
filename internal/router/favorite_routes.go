package router

import (
	"github.com/gin-gonic/gin"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/infrastructure/middleware"
)

// registerFavoriteRoutes 찜 라우트
func (rt *Router) registerFavoriteRoutes(r *gin.Engine) {
	likes := r.Group("/api/likes", middleware.JWTAuth())
	{
		likes.POST("/:postId", rt.handlers.Favorite.Toggle)
		likes.GET("/me", rt.handlers.Favorite.MyList)
	}
}
