package repository

import (
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository 게시글 Repository 생성
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// FindById id 로 게시글 조회
func (r *postRepository) FindById(id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.Preload("Member").First(&post, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "게시글 조회 id=%d", id)
	}
	return &post, nil
}

// FindByIdForUpdate 행 잠금을 걸고 게시글 조회
// 트랜잭션 밖에서 호출하면 잠금이 즉시 풀리므로 반드시 Transaction 안에서 사용한다
func (r *postRepository) FindByIdForUpdate(id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&post, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "게시글 조회 id=%d", id)
	}
	return &post, nil
}

// FindAll 최신순 게시글 목록. category 가 빈 값이면 전체
func (r *postRepository) FindAll(category string, page, pageSize int) ([]model.Post, int64, error) {
	query := r.db.Model(&model.Post{})
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapDBError(err, "게시글 수 집계")
	}

	var posts []model.Post
	offset := (page - 1) * pageSize
	if err := query.Preload("Member").Order("id DESC").Offset(offset).Limit(pageSize).Find(&posts).Error; err != nil {
		return nil, 0, wrapDBError(err, "게시글 목록 조회")
	}
	return posts, total, nil
}

// FindByMemberId 특정 회원의 게시글 목록
func (r *postRepository) FindByMemberId(memberId uint) ([]model.Post, error) {
	var posts []model.Post
	if err := r.db.Where("member_id = ?", memberId).Order("id DESC").Find(&posts).Error; err != nil {
		return nil, wrapDBError(err, "회원 게시글 조회")
	}
	return posts, nil
}

// Create 게시글 생성
func (r *postRepository) Create(post *model.Post) error {
	if err := r.db.Create(post).Error; err != nil {
		return wrapDBError(err, "게시글 생성")
	}
	return nil
}

// Update 게시글 갱신
func (r *postRepository) Update(post *model.Post) error {
	if err := r.db.Save(post).Error; err != nil {
		return wrapDBError(err, "게시글 갱신")
	}
	return nil
}

// IncrementFavoriteCnt 찜 수 +1
func (r *postRepository) IncrementFavoriteCnt(id uint) error {
	if err := r.db.Model(&model.Post{}).Where("id = ?", id).
		Update("favorite_cnt", gorm.Expr("favorite_cnt + 1")).Error; err != nil {
		return wrapDBError(err, "찜 수 증가")
	}
	return nil
}

// DecrementFavoriteCnt 찜 수 -1, 0 미만으로는 내려가지 않는다
func (r *postRepository) DecrementFavoriteCnt(id uint) error {
	if err := r.db.Model(&model.Post{}).Where("id = ? AND favorite_cnt > 0", id).
		Update("favorite_cnt", gorm.Expr("favorite_cnt - 1")).Error; err != nil {
		return wrapDBError(err, "찜 수 감소")
	}
	return nil
}

// Delete 게시글 삭제
func (r *postRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Post{}, id).Error; err != nil {
		return wrapDBError(err, "게시글 삭제")
	}
	return nil
}
