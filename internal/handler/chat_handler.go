// 채팅방/메시지 이력 API
package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/dto/request"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/service"
)

// ChatHandler 채팅방 요청 처리기
type ChatHandler struct {
	chatRoomSvc service.ChatRoomService
}

// NewChatHandler 생성자
func NewChatHandler(chatRoomSvc service.ChatRoomService) *ChatHandler {
	return &ChatHandler{chatRoomSvc: chatRoomSvc}
}

// CreateRoom 게시글 문의방 생성
// POST /api/chat/rooms
func (h *ChatHandler) CreateRoom(c *gin.Context) {
	var req request.CreateChatRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.chatRoomSvc.CreateRoom(CurrentMemberId(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleCreated(c, "채팅방이 준비되었습니다.", data)
}

// MyRooms 내 채팅방 목록
// GET /api/chat/rooms/me
func (h *ChatHandler) MyRooms(c *gin.Context) {
	data, err := h.chatRoomSvc.GetMyRooms(CurrentMemberId(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, "조회되었습니다.", data)
}

// LeaveRoom 채팅방 퇴장
// DELETE /api/chat/rooms/:roomId
func (h *ChatHandler) LeaveRoom(c *gin.Context) {
	roomId, err := ParseUintParam(c, "roomId")
	if err != nil {
		HandleError(c, err)
		return
	}
	if err := h.chatRoomSvc.LeaveRoom(CurrentMemberId(c), roomId); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, "퇴장했습니다.", nil)
}

// Messages 채팅방 메시지 이력
// GET /api/chat/rooms/:roomId/messages
func (h *ChatHandler) Messages(c *gin.Context) {
	roomId, err := ParseUintParam(c, "roomId")
	if err != nil {
		HandleError(c, err)
		return
	}
	data, err := h.chatRoomSvc.GetMessages(CurrentMemberId(c), roomId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, "조회되었습니다.", data)
}
