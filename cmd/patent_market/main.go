package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/config"
	dao "github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/dao/mysql"
	myredis "github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/dao/redis"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/handler"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/https_server"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/infrastructure/logger"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/service"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/service/chat"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/service/storage"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/pkg/util/jwt"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/pkg/util/snowflake"
)

func main() {
	// 1. 설정 로드
	conf := config.GetConfig()

	// 2. 로거 초기화
	if err := logger.Init(&conf.LogConfig, "dev"); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	zap.L().Info("로거 초기화 완료")

	// 3. 데이터베이스 초기화
	repos := dao.Init()
	zap.L().Info("데이터베이스 초기화 완료")

	// 4. Redis 초기화
	myredis.Init()
	zap.L().Info("Redis 초기화 완료")

	// 5. JWT / 스노우플레이크 초기화
	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry, conf.JWTConfig.RefreshTokenExpiry)
	snowflake.Init(conf.SnowflakeConfig.MachineID)

	// 6. 검증 에러 번역기
	if err := handler.InitTrans("en"); err != nil {
		zap.L().Fatal("validator 번역기 초기화 실패", zap.Error(err))
	}

	// 7. Service 계층 초기화 (의존성 주입)
	service.InitServices(repos)
	zap.L().Info("Service 계층 초기화 완료")

	// 8. 파일 저장소
	store, err := storage.NewLocalStorage(conf.StorageConfig.RootPath, conf.StorageConfig.BaseURL)
	if err != nil {
		zap.L().Fatal("파일 저장소 초기화 실패", zap.Error(err))
	}

	// 9. 채팅 서버: 설정(messageMode)에 따라 브로커를 고르고 구독 루프를 띄운다
	broker := chat.NewBrokerFromConfig(conf)
	chat.InitChatServer(repos, broker)
	zap.L().Info("채팅 서버 초기화 완료", zap.String("messageMode", conf.BrokerConfig.MessageMode))

	// 10. HTTP 서버 구성 및 기동
	engine := https_server.Init(handler.NewHandlers(service.Svc, store))
	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port),
		Handler: engine,
	}

	go func() {
		zap.L().Info("서버 기동", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("서버 기동 실패", zap.Error(err))
		}
	}()

	// 종료 신호 대기 후 순서대로 정리한다
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("종료 신호 수신, 서버를 내립니다")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("서버 종료 중 오류", zap.Error(err))
	}
	if err := chat.GlobalChatServer.Close(); err != nil {
		zap.L().Error("채팅 서버 종료 중 오류", zap.Error(err))
	}
	zap.L().Info("서버 종료 완료")
}
