// Package mysql 데이터 접근 계층 초기화를 담당한다
// MySQL 연결, 테이블 자동 마이그레이션, Repository 계층 생성을 수행한다
package mysql

import (
	"fmt"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/config"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/dao/mysql/repository"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/model"

	"go.uber.org/zap"
	mysqldriver "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Init 데이터베이스 연결을 열고 Repository 집합을 반환한다
//  1. 설정에서 접속 정보를 읽어 DSN 구성
//  2. GORM 연결
//  3. AutoMigrate 로 테이블 생성/갱신
//  4. Repository 집합 생성
func Init() *repository.Repositories {
	conf := config.GetConfig()

	// DSN 형식: user:password@tcp(host:port)/database?params
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		conf.MysqlConfig.User,
		conf.MysqlConfig.Password,
		conf.MysqlConfig.Host,
		conf.MysqlConfig.Port,
		conf.MysqlConfig.DatabaseName,
	)

	db, err := gorm.Open(mysqldriver.Open(dsn), &gorm.Config{})
	if err != nil {
		zap.L().Fatal(err.Error())
	}

	// 테이블이 없으면 생성하고, 컬럼 변경은 반영한다 (기존 데이터는 보존)
	err = db.AutoMigrate(
		&model.Member{},
		&model.Post{},
		&model.Favorite{},
		&model.Trade{},
		&model.ChatRoom{},
		&model.Message{},
		&model.RoomParticipant{},
	)
	if err != nil {
		zap.L().Fatal(err.Error())
	}

	return repository.NewRepositories(db)
}
