// Package config 애플리케이션 설정 로드와 접근을 담당한다
// TOML 형식 설정 파일을 다중 경로에서 탐색한다
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// MainConfig 기본 설정
type MainConfig struct {
	AppName string `toml:"appName"` // 애플리케이션 이름
	Host    string `toml:"host"`    // 서버 바인드 주소, 예: "0.0.0.0"
	Port    int    `toml:"port"`    // 서버 포트, 예: 8080
}

// MysqlConfig MySQL 접속 설정
type MysqlConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	DatabaseName string `toml:"databaseName"`
}

// RedisConfig Redis 접속 설정
// 캐시와 채팅 릴레이의 pub/sub 브로커가 같은 인스턴스를 공유한다
type RedisConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Password string `toml:"password"` // 비밀번호 없으면 빈 값
	Db       int    `toml:"db"`
}

// LogConfig 로그 설정, lumberjack 으로 로테이션한다
type LogConfig struct {
	LogPath    string `toml:"logPath"`    // 로그 디렉터리
	FileName   string `toml:"fileName"`   // 로그 파일명
	MaxSize    int    `toml:"maxSize"`    // 파일 하나 최대 크기 (MB)
	MaxBackups int    `toml:"maxBackups"` // 보관할 이전 파일 개수
	MaxAge     int    `toml:"maxAge"`     // 보관 일수
	Level      string `toml:"level"`      // debug, info, warn, error
}

// BrokerConfig 채팅 릴레이 브로커 설정
// messageMode: "channel"(단일 인스턴스), "redis"(pub/sub), "kafka"
type BrokerConfig struct {
	MessageMode string `toml:"messageMode"`
	ChatTopic   string `toml:"chatTopic"` // 발행 토픽/채널 이름
	KafkaAddr   string `toml:"kafkaAddr"` // Kafka 주소, 예: "localhost:9092"
	Partition   int    `toml:"partition"` // Kafka 파티션 수
	Timeout     int    `toml:"timeout"`   // 발행/커밋 타임아웃 (초)
}

// StorageConfig 업로드 파일 저장 설정
// RootPath 아래에 용도별 하위 폴더(profile, attachment)가 생긴다
type StorageConfig struct {
	RootPath string `toml:"rootPath"` // 저장 루트 디렉터리, 예: "static"
	BaseURL  string `toml:"baseUrl"`  // 파일 URL prefix, 예: "/static"
}

// JWTConfig JWT 인증 설정
type JWTConfig struct {
	Secret             string `toml:"secret"`             // 서명 비밀키, 32자 이상 권장
	AccessTokenExpiry  int    `toml:"accessTokenExpiry"`  // Access Token 유효기간 (분)
	RefreshTokenExpiry int    `toml:"refreshTokenExpiry"` // Refresh Token 유효기간 (시간)
}

// SnowflakeConfig 메시지 ID 생성용 스노우플레이크 설정
type SnowflakeConfig struct {
	MachineID int64 `toml:"machineId"` // 0-1023, 인스턴스마다 고유해야 한다
}

// Config 전체 설정
type Config struct {
	MainConfig      `toml:"mainConfig"`
	MysqlConfig     `toml:"mysqlConfig"`
	RedisConfig     `toml:"redisConfig"`
	LogConfig       `toml:"logConfig"`
	BrokerConfig    `toml:"brokerConfig"`
	StorageConfig   `toml:"storageConfig"`
	JWTConfig       `toml:"jwtConfig"`
	SnowflakeConfig `toml:"snowflakeConfig"`
}

// config 전역 설정 싱글턴
var config *Config

// LoadConfig 후보 경로를 순서대로 시도해 설정 파일을 로드한다
func LoadConfig() error {
	paths := []string{
		"configs/config_local.toml", // 로컬 개발용 (우선)
		"configs/config.toml",
		"../../configs/config_local.toml", // 하위 디렉터리에서 실행할 때
		"../../configs/config.toml",
	}

	for _, path := range paths {
		if _, err := toml.DecodeFile(path, config); err == nil {
			return nil
		}
	}

	return fmt.Errorf("could not find configuration file in any of the search paths")
}

// GetConfig 전역 설정 반환 (최초 호출 시 로드)
func GetConfig() *Config {
	if config == nil {
		config = new(Config)
		_ = LoadConfig() // 로드 실패 시 제로값 사용
	}
	return config
}
