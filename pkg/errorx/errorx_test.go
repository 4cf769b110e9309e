package errorx

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrapUnwrap(t *testing.T) {
	base := errors.New("record not found")
	err := Wrap(base, CodeNotFound, "존재하지 않는 게시글입니다.")

	if !errors.Is(err, base) {
		t.Error("wrapped error should match base via errors.Is")
	}

	var codeErr *CodeError
	if !errors.As(err, &codeErr) {
		t.Fatal("errors.As should extract *CodeError")
	}
	if codeErr.ResultCode != "404-1" {
		t.Errorf("ResultCode = %s, want 404-1", codeErr.ResultCode)
	}
	if codeErr.Error() != "존재하지 않는 게시글입니다.: record not found" {
		t.Errorf("unexpected Error(): %s", codeErr.Error())
	}
}

func TestWrapThroughFmtErrorf(t *testing.T) {
	// 서비스 계층에서 fmt.Errorf("%w", ...) 로 한 번 더 감싸도 코드가 유지되어야 한다
	err := fmt.Errorf("거래 생성 실패: %w", New(CodeForbidden, "자신의 게시글은 구매할 수 없습니다."))
	if got := GetResultCode(err); got != CodeForbidden {
		t.Errorf("GetResultCode = %s, want %s", got, CodeForbidden)
	}
}

func TestGetResultCodeDefault(t *testing.T) {
	if got := GetResultCode(errors.New("boom")); got != CodeServerError {
		t.Errorf("GetResultCode = %s, want %s", got, CodeServerError)
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		code string
		want int
	}{
		{"200-1", 200},
		{"201-1", 201},
		{"400-1", 400},
		{"403-1", 403},
		{"404-1", 404},
		{"500-1", 500},
		{"bogus", 500},
	}
	for _, c := range cases {
		if got := New(c.code, "msg").HTTPStatus(); got != c.want {
			t.Errorf("HTTPStatus(%s) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(New(CodeNotFound, "없음")) {
		t.Error("CodeNotFound should be not-found")
	}
	if IsNotFound(New(CodeBadRequest, "이미 판매된 게시글입니다.")) {
		t.Error("CodeBadRequest should not be not-found")
	}
	if !IsNotFound(errors.New("record not found")) {
		t.Error("gorm record-not-found message should be not-found")
	}
}
