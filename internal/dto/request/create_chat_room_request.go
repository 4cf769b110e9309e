package request

// CreateChatRoomRequest 게시글 문의 채팅방 생성 요청
// 같은 (게시글, 회원) 조합으로 이미 방이 있으면 그 방을 재사용한다
type CreateChatRoomRequest struct {
	PostId uint `json:"postId" binding:"required"`
}
