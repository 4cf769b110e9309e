// Package handler HTTP 요청 처리기
// 본 파일은 Handler 집합과 의존성 주입을 구현한다
package handler

import (
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/service"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/service/storage"
)

// Handlers 모든 Handler 인스턴스 집합
// Router 계층은 이 구조체를 통해 각 Handler 에 접근한다
type Handlers struct {
	Member   *MemberHandler
	Admin    *AdminHandler
	Post     *PostHandler
	Favorite *FavoriteHandler
	Trade    *TradeHandler
	Chat     *ChatHandler
	Ws       *WsHandler
}

// NewHandlers 모든 Handler 인스턴스를 생성하고 Service 를 주입한다
func NewHandlers(svc *service.Services, store storage.Storage) *Handlers {
	return &Handlers{
		Member:   NewMemberHandler(svc.Member, store),
		Admin:    NewAdminHandler(svc.Member),
		Post:     NewPostHandler(svc.Post),
		Favorite: NewFavoriteHandler(svc.Favorite),
		Trade:    NewTradeHandler(svc.Trade),
		Chat:     NewChatHandler(svc.ChatRoom),
		Ws:       NewWsHandler(svc.Member),
	}
}
