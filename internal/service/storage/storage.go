// Package storage 업로드 파일 저장 추상화
// 로컬 디스크 구현을 기본으로 제공하며, 반환되는 URL 은 정적 파일 라우트로 서빙된다
package storage

import (
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/pkg/constants"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/pkg/errorx"
)

// Storage 파일 저장소 인터페이스
type Storage interface {
	// Store 파일을 folder 아래 저장하고 접근 URL 을 반환한다
	Store(fileHeader *multipart.FileHeader, folder string, allowedMimes ...string) (string, error)
	// Delete URL 이 가리키는 파일을 삭제한다. 없는 파일은 성공으로 본다
	Delete(url string) error
}

// LocalStorage 로컬 디스크 저장소
type LocalStorage struct {
	// baseDir 실제 파일이 저장되는 루트 디렉터리
	baseDir string
	// baseURL 정적 라우트 프리픽스, 예: "/static"
	baseURL string
}

// NewLocalStorage 생성자. baseDir 가 없으면 만든다
func NewLocalStorage(baseDir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, errorx.Wrapf(err, errorx.CodeServerError, "저장 디렉터리 생성 실패: %s", baseDir)
	}
	return &LocalStorage{
		baseDir: baseDir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Store 파일 저장
// 확장자가 아니라 앞 512 바이트의 Magic Bytes 로 MIME 타입을 검사한다
func (s *LocalStorage) Store(fileHeader *multipart.FileHeader, folder string, allowedMimes ...string) (string, error) {
	if fileHeader.Size > constants.FILE_MAX_SIZE {
		return "", errorx.New(errorx.CodeInvalidParam, "파일 크기가 제한을 초과했습니다.")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", errorx.Wrap(err, errorx.CodeServerError, "파일 열기 실패")
	}
	defer src.Close()

	buffer := make([]byte, 512)
	if _, err := src.Read(buffer); err != nil && err != io.EOF {
		return "", errorx.Wrap(err, errorx.CodeServerError, "파일 읽기 실패")
	}
	contentType := http.DetectContentType(buffer)
	if _, err := src.Seek(0, 0); err != nil {
		return "", errorx.Wrap(err, errorx.CodeServerError, "파일 포인터 리셋 실패")
	}

	if len(allowedMimes) > 0 {
		allowed := false
		for _, mime := range allowedMimes {
			if strings.HasPrefix(contentType, mime) {
				allowed = true
				break
			}
		}
		if !allowed {
			return "", errorx.Newf(errorx.CodeInvalidParam, "허용되지 않는 파일 형식입니다: %s", contentType)
		}
	}

	dstDir := filepath.Join(s.baseDir, folder)
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return "", errorx.Wrap(err, errorx.CodeServerError, "저장 디렉터리 생성 실패")
	}

	// 충돌하지 않는 파일명을 만든다. 원본 이름은 신뢰하지 않는다
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	newFileName := uuid.NewString() + ext
	dst := filepath.Join(dstDir, newFileName)

	out, err := os.Create(dst)
	if err != nil {
		return "", errorx.Wrap(err, errorx.CodeServerError, "파일 생성 실패")
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", errorx.Wrap(err, errorx.CodeServerError, "파일 저장 실패")
	}

	return s.baseURL + "/" + filepath.ToSlash(filepath.Join(folder, newFileName)), nil
}

// Delete URL 이 가리키는 파일 삭제
// baseURL 바깥을 가리키는 URL 은 무시한다 (경로 탈출 방지)
func (s *LocalStorage) Delete(url string) error {
	rel, ok := strings.CutPrefix(url, s.baseURL+"/")
	if !ok {
		return nil
	}
	rel = filepath.Clean(rel)
	if rel == "." || strings.HasPrefix(rel, "..") {
		return nil
	}
	if err := os.Remove(filepath.Join(s.baseDir, rel)); err != nil && !os.IsNotExist(err) {
		return errorx.Wrapf(err, errorx.CodeServerError, "파일 삭제 실패: %s", url)
	}
	return nil
}
