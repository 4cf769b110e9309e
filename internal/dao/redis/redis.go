// Package redis Redis 캐시/pub-sub 접근을 감싼다
// github.com/redis/go-redis/v9 를 하위 클라이언트로 사용한다
package redis

import (
	"context"
	"strconv"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/config"

	"github.com/redis/go-redis/v9"
)

// redisClient 전역 Redis 클라이언트
var redisClient *redis.Client

// Init Redis 연결 초기화
// 설정에서 접속 정보를 읽어 클라이언트를 만들고 캐시 Worker Pool 을 기동한다
func Init() {
	conf := config.GetConfig()
	addr := conf.RedisConfig.Host + ":" + strconv.Itoa(conf.RedisConfig.Port)

	redisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: conf.RedisConfig.Password,
		DB:       conf.RedisConfig.Db,

		// 연결 풀
		PoolSize:     50,
		MinIdleConns: 15,
	})

	// 캐시 갱신 Worker Pool: Worker 15개, 버퍼 3000
	InitCacheWorker(15, 3000)
}

// Client 브로커 등 pub/sub 이 필요한 곳에 내어주는 원시 클라이언트
func Client() *redis.Client {
	return redisClient
}

// Publish 채널에 페이로드 발행
func Publish(ctx context.Context, channel string, payload []byte) error {
	return redisClient.Publish(ctx, channel, payload).Err()
}

// Subscribe 채널 구독. 반환된 PubSub 은 호출자가 Close 해야 한다
func Subscribe(ctx context.Context, channel string) *redis.PubSub {
	return redisClient.Subscribe(ctx, channel)
}
