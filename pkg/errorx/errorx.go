// Package errorx 결과 코드를 포함하는 서비스 계층 에러를 정의한다
// 결과 코드는 "상태코드-일련번호" 형식("404-1" 등)이며,
// HTTP 상태는 앞자리 숫자에서 파생된다
package errorx

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// CodeError 결과 코드를 가지는 서비스 에러
// error 인터페이스를 구현하며 %w 로 감싼 하위 에러를 errors.Is/As 로 추적할 수 있다
type CodeError struct {
	ResultCode string // 결과 코드, 예: "404-1"
	Msg        string // 사용자에게 전달되는 메시지
	cause      error  // 감싼 하위 에러
}

// Error error 인터페이스 구현
func (e *CodeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.cause)
	}
	return e.Msg
}

// Unwrap errors.Is/errors.As 지원
func (e *CodeError) Unwrap() error {
	return e.cause
}

// HTTPStatus 결과 코드의 앞자리를 HTTP 상태 코드로 변환한다
// 예: "403-1" -> 403, 파싱 실패 시 500
func (e *CodeError) HTTPStatus() int {
	head, _, _ := strings.Cut(e.ResultCode, "-")
	status, err := strconv.Atoi(head)
	if err != nil || status < 100 || status > 599 {
		return 500
	}
	return status
}

// New 새 CodeError 생성
func New(resultCode, msg string) *CodeError {
	return &CodeError{
		ResultCode: resultCode,
		Msg:        msg,
	}
}

// Newf 형식화된 메시지를 갖는 CodeError 생성
func Newf(resultCode, format string, args ...any) *CodeError {
	return &CodeError{
		ResultCode: resultCode,
		Msg:        fmt.Sprintf(format, args...),
	}
}

// Wrap 하위 에러를 결과 코드와 메시지로 감싼다
// 용법: errorx.Wrap(err, errorx.CodeNotFound, "존재하지 않는 게시글입니다.")
func Wrap(err error, resultCode, msg string) *CodeError {
	return &CodeError{
		ResultCode: resultCode,
		Msg:        msg,
		cause:      err,
	}
}

// Wrapf 하위 에러를 형식화된 메시지로 감싼다
func Wrapf(err error, resultCode, format string, args ...any) *CodeError {
	return &CodeError{
		ResultCode: resultCode,
		Msg:        fmt.Sprintf(format, args...),
		cause:      err,
	}
}

// GetResultCode 에러에서 결과 코드를 추출한다
// CodeError 가 아니면 서버 에러 코드를 반환한다
func GetResultCode(err error) string {
	var codeErr *CodeError
	if errors.As(err, &codeErr) {
		return codeErr.ResultCode
	}
	return CodeServerError
}

// 결과 코드 상수
const (
	CodeOK           = "200-1" // 정상 처리
	CodeCreated      = "201-1" // 생성 성공
	CodeBadRequest   = "400-1" // 도메인 규칙 위반 (이미 판매된 게시글 등)
	CodeInvalidParam = "400-2" // 요청 본문 검증 실패
	CodeUnauthorized = "401-1" // 인증 실패
	CodeForbidden    = "403-1" // 권한 없음 (자기 게시글 구매 등)
	CodeNotFound     = "404-1" // 리소스 없음
	CodeConflict     = "409-1" // 중복 이메일, 이미 탈퇴한 회원 등
	CodeServerError  = "500-1" // 내부 오류
)

// 공용 에러 인스턴스
var (
	ErrInvalidParam = New(CodeInvalidParam, "요청 형식이 올바르지 않습니다.")
	ErrUnauthorized = New(CodeUnauthorized, "로그인이 필요합니다.")
	ErrServerError  = New(CodeServerError, "서버 오류가 발생했습니다.")
)

// IsNotFound 에러가 "리소스 없음" 계열인지 판별한다 (gorm.ErrRecordNotFound 포함)
func IsNotFound(err error) bool {
	var codeErr *CodeError
	if errors.As(err, &codeErr) && codeErr.ResultCode == CodeNotFound {
		return true
	}
	return err != nil && err.Error() == "record not found"
}
