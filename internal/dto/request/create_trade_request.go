package request

// CreateTradeRequest 거래 생성 요청. 구매자는 인증 컨텍스트에서 가져온다
type CreateTradeRequest struct {
	PostId uint `json:"postId" binding:"required"`
}
