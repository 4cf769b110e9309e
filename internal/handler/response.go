// Package handler HTTP 요청 처리기
// 본 파일은 공통 응답 형식을 구현한다
// 모든 응답은 {resultCode, msg, data} 봉투를 쓰고, HTTP 상태는 결과 코드 앞자리와 같다
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/pkg/errorx"
)

// ResponseData 공통 응답 봉투
type ResponseData struct {
	ResultCode string `json:"resultCode"`     // 결과 코드, 예: "201-1"
	Msg        any    `json:"msg"`            // 사용자 메시지
	Data       any    `json:"data,omitempty"` // 본문
}

// HandleSuccess 200 성공 응답
func HandleSuccess(c *gin.Context, msg string, data any) {
	c.JSON(http.StatusOK, ResponseData{
		ResultCode: errorx.CodeOK,
		Msg:        msg,
		Data:       data,
	})
}

// HandleCreated 201 생성 응답
func HandleCreated(c *gin.Context, msg string, data any) {
	c.JSON(http.StatusCreated, ResponseData{
		ResultCode: errorx.CodeCreated,
		Msg:        msg,
		Data:       data,
	})
}

// HandleError 공통 에러 응답
// errorx.CodeError 면 담긴 결과 코드와 메시지를, 그 외는 500-1 을 반환한다
// 사용 예:
//
//	if err := svc.DoSomething(); err != nil {
//	    HandleError(c, err)
//	    return
//	}
func HandleError(c *gin.Context, err error) {
	var codeErr *errorx.CodeError
	if errors.As(err, &codeErr) {
		c.JSON(codeErr.HTTPStatus(), ResponseData{
			ResultCode: codeErr.ResultCode,
			Msg:        codeErr.Msg,
		})
		return
	}

	zap.L().Error("system error",
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, ResponseData{
		ResultCode: errorx.ErrServerError.ResultCode,
		Msg:        errorx.ErrServerError.Msg,
	})
}

// HandleParamError 요청 바인딩/검증 에러 응답 (validator 번역 지원)
func HandleParamError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		translated := RemoveTopStruct(validationErrs.Translate(Trans))
		c.JSON(http.StatusBadRequest, ResponseData{
			ResultCode: errorx.ErrInvalidParam.ResultCode,
			Msg:        translated,
		})
		return
	}
	c.JSON(http.StatusBadRequest, ResponseData{
		ResultCode: errorx.ErrInvalidParam.ResultCode,
		Msg:        errorx.ErrInvalidParam.Msg,
	})
}
