package repository

import (
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/model"

	"gorm.io/gorm"
)

type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository 회원 Repository 생성
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// FindById id 로 회원 조회
func (r *memberRepository) FindById(id uint) (*model.Member, error) {
	var member model.Member
	if err := r.db.First(&member, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "회원 조회 id=%d", id)
	}
	return &member, nil
}

// FindByEmail 이메일로 회원 조회
func (r *memberRepository) FindByEmail(email string) (*model.Member, error) {
	var member model.Member
	if err := r.db.First(&member, "email = ?", email).Error; err != nil {
		return nil, wrapDBErrorf(err, "회원 조회 email=%s", email)
	}
	return &member, nil
}

// ExistsByEmail 이메일 중복 확인
func (r *memberRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Member{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, wrapDBError(err, "이메일 중복 확인")
	}
	return count > 0, nil
}

// FindAll 페이지 단위 회원 목록
func (r *memberRepository) FindAll(page, pageSize int) ([]model.Member, int64, error) {
	var members []model.Member
	var total int64
	if err := r.db.Model(&model.Member{}).Count(&total).Error; err != nil {
		return nil, 0, wrapDBError(err, "회원 수 집계")
	}
	offset := (page - 1) * pageSize
	if err := r.db.Order("id DESC").Offset(offset).Limit(pageSize).Find(&members).Error; err != nil {
		return nil, 0, wrapDBError(err, "회원 목록 조회")
	}
	return members, total, nil
}

// Create 회원 생성
func (r *memberRepository) Create(member *model.Member) error {
	if err := r.db.Create(member).Error; err != nil {
		return wrapDBError(err, "회원 생성")
	}
	return nil
}

// Update 회원 정보 갱신
func (r *memberRepository) Update(member *model.Member) error {
	if err := r.db.Save(member).Error; err != nil {
		return wrapDBError(err, "회원 정보 갱신")
	}
	return nil
}

// UpdateStatus 회원 상태 변경
func (r *memberRepository) UpdateStatus(id uint, status string) error {
	if err := r.db.Model(&model.Member{}).Where("id = ?", id).Update("status", status).Error; err != nil {
		return wrapDBError(err, "회원 상태 변경")
	}
	return nil
}
