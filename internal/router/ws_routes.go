package router

import (
	"github.com/gin-gonic/gin"
)

// registerWsRoutes WebSocket 라우트
// 토큰 검증은 핸들러 안에서 수행한다 (쿼리 파라미터 방식)
func (rt *Router) registerWsRoutes(r *gin.Engine) {
	r.GET("/ws", rt.handlers.Ws.Connect)
}
