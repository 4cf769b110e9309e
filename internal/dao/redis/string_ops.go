// String 타입 기본 연산
package redis

import (
	"context"
	"errors"
	"time"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/pkg/errorx"

	"github.com/redis/go-redis/v9"
)

// SetKeyEx 만료 시간과 함께 키 저장
func SetKeyEx(ctx context.Context, key string, value string, timeout time.Duration) error {
	if err := redisClient.Set(ctx, key, value, timeout).Err(); err != nil {
		return errorx.Wrapf(err, errorx.CodeServerError, "redis set key %s", key)
	}
	return nil
}

// GetKey 키 조회. 키가 없으면 빈 문자열과 nil 을 반환한다 (에러 아님)
func GetKey(ctx context.Context, key string) (string, error) {
	value, err := redisClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", errorx.Wrapf(err, errorx.CodeServerError, "redis get key %s", key)
	}
	return value, nil
}

// DelKeyIfExists 키가 있으면 삭제한다. 없는 경우도 성공으로 본다
// UNLINK 는 백그라운드에서 메모리를 해제하므로 본 스레드를 막지 않는다
func DelKeyIfExists(ctx context.Context, key string) error {
	exists, err := redisClient.Exists(ctx, key).Result()
	if err != nil {
		return errorx.Wrapf(err, errorx.CodeServerError, "redis exists key %s", key)
	}
	if exists == 1 {
		if err := redisClient.Unlink(ctx, key).Err(); err != nil {
			return errorx.Wrapf(err, errorx.CodeServerError, "redis unlink key %s", key)
		}
	}
	return nil
}
