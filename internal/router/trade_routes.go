package router

import (
	"github.com/gin-gonic/gin"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/infrastructure/middleware"
)

// registerTradeRoutes 거래 라우트
func (rt *Router) registerTradeRoutes(r *gin.Engine) {
	trades := r.Group("/api/trades", middleware.JWTAuth())
	{
		trades.POST("", rt.handlers.Trade.Create)
		trades.GET("/me", rt.handlers.Trade.MyList)
		trades.GET("/:tradeId", rt.handlers.Trade.Get)
	}
}
