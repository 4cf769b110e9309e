// Package model 데이터베이스 엔티티를 정의한다
// 본 파일은 회원 엔티티와 역할/상태 상수를 정의한다
package model

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// 회원 역할
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// 회원 상태
// ACTIVE -> DELETED 는 단방향이다. 탈퇴한 회원을 다시 탈퇴시키면 에러가 난다
const (
	MemberStatusActive  = "ACTIVE"
	MemberStatusDeleted = "DELETED"
	MemberStatusBlocked = "BLOCKED"
)

// Member 회원 엔티티
// 물리 삭제하지 않고 status 전환으로 탈퇴를 표현한다
type Member struct {
	gorm.Model // ID, CreatedAt, UpdatedAt, DeletedAt

	// Email 로그인 식별자, 전역 유니크
	Email string `gorm:"column:email;uniqueIndex;type:varchar(100);not null;comment:이메일"`

	// Name 회원 이름
	Name string `gorm:"column:name;type:varchar(50);not null;comment:이름"`

	// Password bcrypt 해시. 평문은 저장하지 않는다
	Password string `gorm:"column:password;type:varchar(100);not null;comment:비밀번호 해시"`

	// Role USER | ADMIN
	Role string `gorm:"column:role;type:varchar(10);not null;default:USER;comment:역할"`

	// Status ACTIVE | DELETED | BLOCKED
	Status string `gorm:"column:status;index;type:varchar(10);not null;default:ACTIVE;comment:상태"`

	// ProfileUrl 프로필 이미지 URL (선택)
	ProfileUrl string `gorm:"column:profile_url;type:varchar(255);comment:프로필 이미지"`

	// RefreshTokenId 현재 유효한 Refresh Token 의 식별자
	// 재발급 시 교체되어 이전 토큰을 무효화한다
	RefreshTokenId string `gorm:"column:refresh_token_id;type:char(36);comment:리프레시 토큰 id"`

	// RawPassword 평문 비밀번호 (DB 미저장)
	// 요청에서 받은 평문을 담아두면 BeforeSave 에서 해시된다
	RawPassword string `gorm:"-" json:"-"`
}

// TableName 테이블명 지정
func (Member) TableName() string {
	return "member"
}

// BeforeSave GORM Hook: 저장 전에 평문 비밀번호를 해시한다
func (m *Member) BeforeSave(tx *gorm.DB) (err error) {
	if m.RawPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(m.RawPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		m.Password = string(hash)
		m.RawPassword = ""
	}
	return nil
}

// CheckPassword 로그인 시 비밀번호 검증
func (m *Member) CheckPassword(plaintext string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(m.Password), []byte(plaintext))
	return err == nil
}

// IsAdmin 관리자 여부
func (m *Member) IsAdmin() bool {
	return m.Role == RoleAdmin
}
