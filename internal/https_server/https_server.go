// Package https_server HTTP 서버 초기화
// gin 엔진을 만들고 미들웨어, 정적 자원, 라우트를 구성한다
package https_server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/config"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/handler"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/infrastructure/logger"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/router"
)

// Init gin 엔진 구성
//  1. 빈 엔진 생성 (기본 미들웨어 없이, 전부 직접 제어)
//  2. zap 로그 + panic 복구 미들웨어
//  3. CORS
//  4. 정적 파일 라우트 (업로드 파일 서빙)
//  5. 비즈니스 라우트 등록
func Init(handlers *handler.Handlers) *gin.Engine {
	engine := gin.New()

	engine.Use(logger.GinLogger())
	engine.Use(logger.GinRecovery(true))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	engine.Use(cors.New(corsConfig))

	conf := config.GetConfig()
	// 업로드 파일 서빙: /static/profile/..., /static/attachment/...
	engine.Static(conf.StorageConfig.BaseURL, conf.StorageConfig.RootPath)

	rt := router.NewRouter(handlers)
	rt.RegisterRoutes(engine)

	return engine
}
