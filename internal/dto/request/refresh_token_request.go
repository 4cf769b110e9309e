package request

// RefreshTokenRequest 액세스 토큰 재발급 요청
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}
