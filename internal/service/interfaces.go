// Package service 비즈니스 계층 인터페이스를 정의한다
// 모든 Service 인터페이스는 이 파일에 모으고, 구현은 도메인별 하위 패키지에 둔다
// Handler 계층은 인터페이스에만 의존한다
package service

import (
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/dto/request"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/dto/respond"
)

// MemberService 회원 비즈니스 인터페이스
// 가입, 인증, 정보 관리, 탈퇴, 관리자 기능을 담당한다
type MemberService interface {
	// Signup 회원 가입. 이메일 중복이면 Conflict 에러
	Signup(req request.SignupRequest) (*respond.MemberRespond, error)
	// Login 이메일/비밀번호 로그인. 성공 시 토큰 쌍 발급
	Login(req request.LoginRequest) (*respond.LoginRespond, error)
	// RefreshToken Refresh Token 으로 새 토큰 쌍 발급 (회전 방식)
	RefreshToken(req request.RefreshTokenRequest) (*respond.LoginRespond, error)
	// GetMember 회원 조회
	GetMember(memberId uint) (*respond.MemberRespond, error)
	// UpdateMember 회원 정보 수정
	UpdateMember(memberId uint, req request.UpdateMemberRequest) (*respond.MemberRespond, error)
	// UpdateProfileImage 프로필 이미지 교체
	UpdateProfileImage(memberId uint, profileUrl string) error
	// DeleteMember 회원 탈퇴 (soft delete). 재탈퇴 시도는 Conflict 에러
	DeleteMember(memberId uint) error
	// GetMemberList 페이지 단위 회원 목록 (관리자용)
	GetMemberList(page, pageSize int) ([]respond.MemberRespond, int64, error)
	// BlockMember 회원 차단/해제 (관리자용)
	BlockMember(memberId uint, blocked bool) error
}

// PostService 게시글 비즈니스 인터페이스
type PostService interface {
	// CreatePost 게시글 등록
	CreatePost(memberId uint, req request.CreatePostRequest) (*respond.PostRespond, error)
	// GetPost 게시글 상세 조회. viewerId 가 있으면 찜 여부를 함께 담는다
	GetPost(postId uint, viewerId uint) (*respond.PostDetailRespond, error)
	// GetPostList 최신순 목록 조회. category 가 빈 값이면 전체
	GetPostList(category string, page, pageSize int) ([]respond.PostRespond, int64, error)
	// GetMyPostList 내 게시글 목록
	GetMyPostList(memberId uint) ([]respond.PostRespond, error)
	// UpdatePost 게시글 수정. 소유자만 가능
	UpdatePost(memberId, postId uint, req request.UpdatePostRequest) (*respond.PostRespond, error)
	// DeletePost 게시글 삭제. 찜/거래/채팅방을 한 트랜잭션에서 함께 정리한다
	DeletePost(memberId, postId uint) error
}

// FavoriteService 찜 비즈니스 인터페이스
type FavoriteService interface {
	// ToggleFavorite 찜 토글. 없으면 등록, 있으면 해제하며
	// 게시글의 favoriteCnt 를 같은 트랜잭션에서 증감한다
	ToggleFavorite(memberId, postId uint) (*respond.FavoriteToggleRespond, error)
	// GetMyFavorites 내 찜 목록 (최신순)
	GetMyFavorites(memberId uint) ([]respond.MyFavoriteRespond, error)
}

// TradeService 거래 비즈니스 인터페이스
type TradeService interface {
	// CreateTrade 거래 체결. 게시글 행 잠금 아래에서 판매 가능 여부를 확인하고
	// 거래 생성과 SOLD_OUT 전환을 원자적으로 수행한다
	CreateTrade(buyerId uint, req request.CreateTradeRequest) (*respond.TradeRespond, error)
	// GetTrade 거래 단건 조회. 거래 당사자만 볼 수 있다
	GetTrade(memberId, tradeId uint) (*respond.TradeRespond, error)
	// GetMyTrades 내 거래 목록 (구매/판매 모두)
	GetMyTrades(memberId uint) ([]respond.TradeRespond, error)
}

// ChatRoomService 채팅방 비즈니스 인터페이스
// 실시간 중계는 chat.ChatServer 가, 방/이력 관리는 이 인터페이스가 담당한다
type ChatRoomService interface {
	// CreateRoom 게시글 문의방 생성. 같은 (게시글, 회원) 방이 있으면 재사용한다
	CreateRoom(memberId uint, req request.CreateChatRoomRequest) (*respond.ChatRoomRespond, error)
	// GetMyRooms 내가 참여 중인 방 목록
	GetMyRooms(memberId uint) ([]respond.ChatRoomRespond, error)
	// LeaveRoom 방 퇴장 (soft leave). 이후 해당 방으로 메시지를 보낼 수 없다
	LeaveRoom(memberId, roomId uint) error
	// GetMessages 방의 메시지 이력 조회. 활성 참여자만 가능
	GetMessages(memberId, roomId uint) ([]respond.MessageRespond, error)
}
