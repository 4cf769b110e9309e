package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTConfig JWT 설정
type JWTConfig struct {
	Secret             string
	AccessTokenExpiry  time.Duration // Access Token 유효기간
	RefreshTokenExpiry time.Duration // Refresh Token 유효기간
}

// 전역 설정, Init 에서 초기화된다
var jwtConfig *JWTConfig

// Init JWT 설정 초기화
func Init(secret string, accessExpiryMinutes, refreshExpiryHours int) {
	jwtConfig = &JWTConfig{
		Secret:             secret,
		AccessTokenExpiry:  time.Duration(accessExpiryMinutes) * time.Minute,
		RefreshTokenExpiry: time.Duration(refreshExpiryHours) * time.Hour,
	}
}

// Claims 커스텀 JWT 클레임
type Claims struct {
	MemberId uint   `json:"member_id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	TokenID  string `json:"token_id,omitempty"` // Refresh Token 전용, 단일 세션 강제용
	jwt.RegisteredClaims
}

// GenerateAccessToken Access Token 생성 (단기, API 인증용)
func GenerateAccessToken(memberId uint, email, role string) (string, error) {
	claims := Claims{
		MemberId: memberId,
		Email:    email,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(jwtConfig.AccessTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "patent_market",
			Subject:   "access_token",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtConfig.Secret))
}

// GenerateRefreshToken Refresh Token 생성 (장기, Access Token 갱신용)
// 토큰 문자열과 tokenID 를 반환한다. tokenID 는 회원 레코드에 저장되어
// 재발급 시 탈취된 이전 토큰을 무효화하는 데 쓰인다
func GenerateRefreshToken(memberId uint, email, role string) (tokenString string, tokenID string, err error) {
	tokenID = uuid.NewString()
	claims := Claims{
		MemberId: memberId,
		Email:    email,
		Role:     role,
		TokenID:  tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(jwtConfig.RefreshTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "patent_market",
			Subject:   "refresh_token",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err = token.SignedString([]byte(jwtConfig.Secret))
	return
}

// ParseToken 토큰 파싱 및 서명 검증
func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(jwtConfig.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
