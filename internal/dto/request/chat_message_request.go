package request

// ChatMessageRequest WebSocket 으로 수신하는 채팅 메시지
type ChatMessageRequest struct {
	// Sender 발신자 표시 이름
	Sender string `json:"sender"`
	// SenderId 발신자 회원 ID. 서버가 인증 컨텍스트로 덮어쓴다
	SenderId uint `json:"senderId"`
	// SenderEmail 발신자 이메일
	SenderEmail string `json:"senderEmail"`
	// Content 메시지 본문
	Content string `json:"content" binding:"required"`
	// ChatRoomId 대상 채팅방 ID
	ChatRoomId uint `json:"chatRoomId" binding:"required"`
}
