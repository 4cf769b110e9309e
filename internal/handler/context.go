package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/pkg/errorx"
)

// 인증 미들웨어가 gin 컨텍스트에 넣는 키
const (
	CtxMemberId = "member_id"
	CtxEmail    = "email"
	CtxRole     = "role"
)

// CurrentMemberId 인증 컨텍스트에서 회원 ID 를 꺼낸다. 미인증이면 0
func CurrentMemberId(c *gin.Context) uint {
	if v, ok := c.Get(CtxMemberId); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// ParseUintParam 경로 파라미터를 uint 로 파싱한다
func ParseUintParam(c *gin.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || value == 0 {
		return 0, errorx.Newf(errorx.CodeInvalidParam, "잘못된 경로 파라미터입니다: %s", name)
	}
	return uint(value), nil
}
