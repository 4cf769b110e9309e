// Package service 비즈니스 계층
// 본 파일은 Service 계층의 의존성 주입과 집합을 구현한다
package service

import (
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/dao/mysql/repository"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/service/chatroom"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/service/favorite"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/service/member"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/service/post"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/service/trade"
)

// Services 모든 Service 인스턴스 집합
// Handler 계층은 service.Svc 를 통해 각 Service 에 접근한다
type Services struct {
	Member   MemberService
	Post     PostService
	Favorite FavoriteService
	Trade    TradeService
	ChatRoom ChatRoomService
}

// NewServices 모든 Service 인스턴스를 생성하고 Repository 를 주입한다
func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Member:   member.NewMemberService(repos),
		Post:     post.NewPostService(repos),
		Favorite: favorite.NewFavoriteService(repos),
		Trade:    trade.NewTradeService(repos),
		ChatRoom: chatroom.NewChatRoomService(repos),
	}
}

// Svc 전역 Services 인스턴스
var Svc *Services

// InitServices 전역 Services 초기화. Repository 초기화 이후 main 에서 호출한다
func InitServices(repos *repository.Repositories) {
	Svc = NewServices(repos)
}
