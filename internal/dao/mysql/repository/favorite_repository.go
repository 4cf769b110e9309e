package repository

import (
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/model"

	"gorm.io/gorm"
)

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository 찜 Repository 생성
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// FindByMemberAndPost (회원, 게시글) 쌍의 찜 조회
func (r *favoriteRepository) FindByMemberAndPost(memberId, postId uint) (*model.Favorite, error) {
	var favorite model.Favorite
	if err := r.db.First(&favorite, "member_id = ? AND post_id = ?", memberId, postId).Error; err != nil {
		return nil, wrapDBErrorf(err, "찜 조회 member=%d post=%d", memberId, postId)
	}
	return &favorite, nil
}

// FindByMemberIdWithPost 회원의 찜 목록을 게시글 포함 최신순으로 조회
func (r *favoriteRepository) FindByMemberIdWithPost(memberId uint) ([]model.Favorite, error) {
	var favorites []model.Favorite
	if err := r.db.Preload("Post").Preload("Post.Member").
		Where("member_id = ?", memberId).
		Order("created_at DESC, id DESC").
		Find(&favorites).Error; err != nil {
		return nil, wrapDBError(err, "찜 목록 조회")
	}
	return favorites, nil
}

// CountByPostId 게시글의 찜 수 집계
func (r *favoriteRepository) CountByPostId(postId uint) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Favorite{}).Where("post_id = ?", postId).Count(&count).Error; err != nil {
		return 0, wrapDBError(err, "찜 수 집계")
	}
	return count, nil
}

// Create 찜 생성
func (r *favoriteRepository) Create(favorite *model.Favorite) error {
	if err := r.db.Create(favorite).Error; err != nil {
		return wrapDBError(err, "찜 생성")
	}
	return nil
}

// Delete 찜 삭제
func (r *favoriteRepository) Delete(memberId, postId uint) error {
	if err := r.db.Where("member_id = ? AND post_id = ?", memberId, postId).
		Delete(&model.Favorite{}).Error; err != nil {
		return wrapDBError(err, "찜 삭제")
	}
	return nil
}

// DeleteByPostId 게시글의 모든 찜 삭제
func (r *favoriteRepository) DeleteByPostId(postId uint) error {
	if err := r.db.Where("post_id = ?", postId).Delete(&model.Favorite{}).Error; err != nil {
		return wrapDBError(err, "게시글 찜 일괄 삭제")
	}
	return nil
}
