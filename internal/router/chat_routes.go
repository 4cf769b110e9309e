package router

import (
	"github.com/gin-gonic/gin"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/infrastructure/middleware"
)

// registerChatRoutes 채팅방/이력 라우트
func (rt *Router) registerChatRoutes(r *gin.Engine) {
	rooms := r.Group("/api/chat/rooms", middleware.JWTAuth())
	{
		rooms.POST("", rt.handlers.Chat.CreateRoom)
		rooms.GET("/me", rt.handlers.Chat.MyRooms)
		rooms.DELETE("/:roomId", rt.handlers.Chat.LeaveRoom)
		rooms.GET("/:roomId/messages", rt.handlers.Chat.Messages)
	}
}
