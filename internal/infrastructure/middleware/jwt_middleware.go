// Package middleware gin 미들웨어
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/model"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/pkg/errorx"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/pkg/util/jwt"
)

// abortUnauthorized 인증 실패 응답으로 체인을 끊는다
func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"resultCode": errorx.CodeUnauthorized,
		"msg":        msg,
	})
}

// JWTAuth JWT 인증 미들웨어
// Access Token 을 검증하고 회원 정보를 컨텍스트에 넣는다
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "로그인이 필요합니다.")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "Bearer 토큰 형식이 아닙니다.")
			return
		}

		claims, err := jwt.ParseToken(parts[1])
		if err != nil || claims.Subject != "access_token" {
			abortUnauthorized(c, "토큰이 만료되었거나 유효하지 않습니다. 다시 로그인해 주세요.")
			return
		}

		c.Set("member_id", claims.MemberId)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// AdminOnly 관리자 전용 라우트 보호. JWTAuth 다음에 와야 한다
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		if role != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"resultCode": errorx.CodeForbidden,
				"msg":        "관리자만 접근할 수 있습니다.",
			})
			return
		}
		c.Next()
	}
}
