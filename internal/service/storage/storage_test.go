package storage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/pkg/errorx"
)

// pngHeader PNG Magic Bytes (image/png 로 판별된다)
var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

// makeFileHeader 멀티파트 폼을 메모리에서 만들어 FileHeader 를 얻는다
func makeFileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", name)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}

func TestStoreAndDelete(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir, "/static")
	if err != nil {
		t.Fatal(err)
	}

	url, err := s.Store(makeFileHeader(t, "profile.png", pngHeader), "profile", "image/")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(url, "/static/profile/") {
		t.Errorf("url = %s", url)
	}

	// 디스크에 실제로 저장되었는지 확인
	rel := strings.TrimPrefix(url, "/static/")
	if _, err := os.Stat(filepath.Join(dir, rel)); err != nil {
		t.Errorf("저장 파일 확인 실패: %v", err)
	}

	if err := s.Delete(url); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, rel)); !os.IsNotExist(err) {
		t.Error("삭제 후에도 파일이 남아 있음")
	}
}

func TestStoreRejectsMimeType(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), "/static")
	if err != nil {
		t.Fatal(err)
	}

	_, err = s.Store(makeFileHeader(t, "evil.png", []byte("#!/bin/sh\nrm -rf /\n")), "profile", "image/")
	if errorx.GetResultCode(err) != errorx.CodeInvalidParam {
		t.Errorf("result code = %s, want %s", errorx.GetResultCode(err), errorx.CodeInvalidParam)
	}
}

func TestDeleteIgnoresForeignUrl(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), "/static")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Delete("https://cdn.example.com/x.png"); err != nil {
		t.Errorf("외부 URL 삭제가 에러를 반환함: %v", err)
	}
	if err := s.Delete("/static/../etc/passwd"); err != nil {
		t.Errorf("경로 탈출 URL 이 에러를 반환함: %v", err)
	}
}
