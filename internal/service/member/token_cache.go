// token_cache.go
// Refresh Token ID 의 Redis 캐시
// MySQL 의 RefreshTokenId 가 진실이고, 캐시는 회전/탈퇴된 토큰을 빠르게 거르는 용도다
package member

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	myredis "github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/dao/redis"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/pkg/constants"
)

// tokenCache 회원별 현재 유효한 refresh tokenID 저장소
type tokenCache interface {
	// Store tokenID 저장. 실패해도 로그인 흐름은 막지 않는다
	Store(memberId uint, tokenID string)
	// Load 저장된 tokenID 조회. 캐시 미스면 빈 문자열
	Load(memberId uint) (string, error)
	// Drop tokenID 제거 (탈퇴, 차단 시)
	Drop(memberId uint)
}

// redisTokenCache tokenCache 의 Redis 구현
type redisTokenCache struct{}

func tokenKey(memberId uint) string {
	return fmt.Sprintf("member_token:%d", memberId)
}

// opCtx Redis 명령용 타임아웃 컨텍스트
func opCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(constants.REDIS_TIMEOUT)*time.Second)
}

func (redisTokenCache) Store(memberId uint, tokenID string) {
	ctx, cancel := opCtx()
	defer cancel()
	expiry := time.Duration(constants.REFRESH_TOKEN_EXPIRY_HOURS) * time.Hour
	if err := myredis.SetKeyEx(ctx, tokenKey(memberId), tokenID, expiry); err != nil {
		zap.L().Warn("Token ID Redis 저장 실패", zap.Uint("memberId", memberId), zap.Error(err))
	}
}

func (redisTokenCache) Load(memberId uint) (string, error) {
	ctx, cancel := opCtx()
	defer cancel()
	return myredis.GetKey(ctx, tokenKey(memberId))
}

func (redisTokenCache) Drop(memberId uint) {
	myredis.SubmitCacheTask(func() {
		ctx, cancel := opCtx()
		defer cancel()
		if err := myredis.DelKeyIfExists(ctx, tokenKey(memberId)); err != nil {
			zap.L().Warn("토큰 캐시 제거 실패", zap.Uint("memberId", memberId), zap.Error(err))
		}
	})
}
