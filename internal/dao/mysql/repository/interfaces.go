// Package repository 데이터 접근 계층 인터페이스와 집합 구조를 정의한다
// Repository 패턴으로 데이터 접근을 비즈니스 로직에서 분리한다
// 모든 인터페이스는 이 파일에 정의하고 구현은 엔티티별 파일에 둔다
package repository

import (
	"errors"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/model"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/pkg/errorx"

	"gorm.io/gorm"
)

// ==================== 에러 래핑 헬퍼 ====================

// wrapDBError DB 에러를 결과 코드로 감싼다
//   - ErrRecordNotFound -> CodeNotFound
//   - 그 외 -> CodeServerError
func wrapDBError(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.Wrap(err, errorx.CodeNotFound, msg)
	}
	return errorx.Wrap(err, errorx.CodeServerError, msg)
}

// wrapDBErrorf 형식화 메시지를 지원하는 wrapDBError
func wrapDBErrorf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.Wrapf(err, errorx.CodeNotFound, format, args...)
	}
	return errorx.Wrapf(err, errorx.CodeServerError, format, args...)
}

// ==================== Repository 인터페이스 ====================

// MemberRepository 회원 데이터 접근 인터페이스
type MemberRepository interface {
	// FindById id 로 회원 조회
	FindById(id uint) (*model.Member, error)
	// FindByEmail 이메일로 회원 조회
	FindByEmail(email string) (*model.Member, error)
	// ExistsByEmail 이메일 중복 확인
	ExistsByEmail(email string) (bool, error)
	// FindAll 페이지 단위 회원 목록 (관리자용)
	FindAll(page, pageSize int) ([]model.Member, int64, error)
	// Create 회원 생성
	Create(member *model.Member) error
	// Update 회원 정보 갱신
	Update(member *model.Member) error
	// UpdateStatus 회원 상태 변경
	UpdateStatus(id uint, status string) error
}

// PostRepository 게시글 데이터 접근 인터페이스
type PostRepository interface {
	// FindById id 로 게시글 조회
	FindById(id uint) (*model.Post, error)
	// FindByIdForUpdate 행 잠금(SELECT ... FOR UPDATE)을 걸고 조회
	// 거래 체결과 찜 토글은 반드시 이 메서드로 읽은 행에 대해서만 갱신한다
	FindByIdForUpdate(id uint) (*model.Post, error)
	// FindAll 최신순 게시글 목록. category 가 빈 값이면 전체
	FindAll(category string, page, pageSize int) ([]model.Post, int64, error)
	// FindByMemberId 특정 회원의 게시글 목록
	FindByMemberId(memberId uint) ([]model.Post, error)
	// Create 게시글 생성
	Create(post *model.Post) error
	// Update 게시글 갱신
	Update(post *model.Post) error
	// IncrementFavoriteCnt 찜 수 +1
	IncrementFavoriteCnt(id uint) error
	// DecrementFavoriteCnt 찜 수 -1 (0 미만으로 내려가지 않음)
	DecrementFavoriteCnt(id uint) error
	// Delete 게시글 삭제
	Delete(id uint) error
}

// FavoriteRepository 찜 데이터 접근 인터페이스
type FavoriteRepository interface {
	// FindByMemberAndPost (회원, 게시글) 쌍의 찜 조회. 없으면 NotFound
	FindByMemberAndPost(memberId, postId uint) (*model.Favorite, error)
	// FindByMemberIdWithPost 회원의 찜 목록을 게시글 포함 최신순으로 조회
	FindByMemberIdWithPost(memberId uint) ([]model.Favorite, error)
	// CountByPostId 게시글의 찜 수 집계 (검증용)
	CountByPostId(postId uint) (int64, error)
	// Create 찜 생성
	Create(favorite *model.Favorite) error
	// Delete 찜 삭제
	Delete(memberId, postId uint) error
	// DeleteByPostId 게시글의 모든 찜 삭제 (게시글 삭제 시)
	DeleteByPostId(postId uint) error
}

// TradeRepository 거래 데이터 접근 인터페이스
type TradeRepository interface {
	// FindById id 로 거래 조회 (게시글 포함)
	FindById(id uint) (*model.Trade, error)
	// FindByMemberId 회원이 구매자 또는 판매자인 거래 목록 (최신순)
	FindByMemberId(memberId uint) ([]model.Trade, error)
	// Create 거래 생성
	Create(trade *model.Trade) error
	// DeleteByPostId 게시글의 거래 삭제 (게시글 삭제 시)
	DeleteByPostId(postId uint) error
}

// ChatRoomRepository 채팅방 데이터 접근 인터페이스
type ChatRoomRepository interface {
	// FindById id 로 채팅방 조회
	FindById(id uint) (*model.ChatRoom, error)
	// FindByPostAndMember 게시글 문의방 중 해당 회원이 참여한 방 조회
	FindByPostAndMember(postId, memberId uint) (*model.ChatRoom, error)
	// FindByMemberId 회원이 활성 참여 중인 방 목록
	FindByMemberId(memberId uint) ([]model.ChatRoom, error)
	// Create 채팅방 생성
	Create(room *model.ChatRoom) error
	// DeleteByPostId 게시글의 채팅방 삭제 (게시글 삭제 시)
	DeleteByPostId(postId uint) error
}

// MessageRepository 메시지 데이터 접근 인터페이스
type MessageRepository interface {
	// FindByChatRoomId 채팅방 메시지 목록 (오래된 순)
	FindByChatRoomId(chatRoomId uint) ([]model.Message, error)
	// Create 메시지 저장
	Create(message *model.Message) error
}

// RoomParticipantRepository 채팅방 참여자 데이터 접근 인터페이스
type RoomParticipantRepository interface {
	// FindByRoomAndMember (방, 회원) 참여 행 조회. 없으면 NotFound
	FindByRoomAndMember(chatRoomId, memberId uint) (*model.RoomParticipant, error)
	// FindActiveByRoom 방의 활성 참여자 목록
	FindActiveByRoom(chatRoomId uint) ([]model.RoomParticipant, error)
	// IsActiveParticipant 회원이 방의 활성 참여자인지 확인
	IsActiveParticipant(chatRoomId, memberId uint) (bool, error)
	// Create 참여자 등록
	Create(participant *model.RoomParticipant) error
	// Deactivate 퇴장 처리 (is_active=false, left_at 기록)
	Deactivate(chatRoomId, memberId uint) error
}

// ==================== Repository 집합 ====================

// Transactor 트랜잭션 실행 인터페이스
// 서비스 계층은 이 인터페이스로 트랜잭션 경계를 잡는다.
// 테스트에서는 뮤텍스로 직렬화하는 가짜 구현을 주입한다
type Transactor interface {
	// Transaction fn 안의 모든 작업이 전부 성공하거나 전부 롤백된다
	Transaction(fn func(tx *Repositories) error) error
}

// Repositories 모든 Repository 인스턴스 집합
// 의존성 주입 진입점으로, Service 계층은 이 구조체로 데이터 계층에 접근한다
type Repositories struct {
	db              *gorm.DB
	Member          MemberRepository
	Post            PostRepository
	Favorite        FavoriteRepository
	Trade           TradeRepository
	ChatRoom        ChatRoomRepository
	Message         MessageRepository
	RoomParticipant RoomParticipantRepository
}

// NewRepositories GORM 인스턴스로 모든 Repository 를 생성한다
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:              db,
		Member:          NewMemberRepository(db),
		Post:            NewPostRepository(db),
		Favorite:        NewFavoriteRepository(db),
		Trade:           NewTradeRepository(db),
		ChatRoom:        NewChatRoomRepository(db),
		Message:         NewMessageRepository(db),
		RoomParticipant: NewRoomParticipantRepository(db),
	}
}

// Transaction Transactor 구현
// 트랜잭션용 gorm.DB 로 새 Repositories 를 만들어 fn 에 넘긴다
func (r *Repositories) Transaction(fn func(tx *Repositories) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
