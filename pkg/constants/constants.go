package constants

const (
	CHANNEL_SIZE               = 100      // ws 송수신 채널 버퍼 크기
	FILE_MAX_SIZE              = 10 << 20 // 업로드 파일 최대 크기 (10MB)
	REDIS_TIMEOUT              = 2        // Redis 명령 타임아웃 (초)
	REFRESH_TOKEN_EXPIRY_HOURS = 168      // Refresh Token 유효기간 (7일)
)
