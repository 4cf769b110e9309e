// 찜(관심 게시글) API
package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/service"
)

// FavoriteHandler 찜 요청 처리기
type FavoriteHandler struct {
	favoriteSvc service.FavoriteService
}

// NewFavoriteHandler 생성자
func NewFavoriteHandler(favoriteSvc service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteSvc: favoriteSvc}
}

// Toggle 찜 토글
// POST /api/likes/:postId
func (h *FavoriteHandler) Toggle(c *gin.Context) {
	postId, err := ParseUintParam(c, "postId")
	if err != nil {
		HandleError(c, err)
		return
	}
	data, err := h.favoriteSvc.ToggleFavorite(CurrentMemberId(c), postId)
	if err != nil {
		HandleError(c, err)
		return
	}
	msg := "찜이 해제되었습니다."
	if data.Liked {
		msg = "찜했습니다."
	}
	HandleSuccess(c, msg, data)
}

// MyList 내 찜 목록
// GET /api/likes/me
func (h *FavoriteHandler) MyList(c *gin.Context) {
	data, err := h.favoriteSvc.GetMyFavorites(CurrentMemberId(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, "조회되었습니다.", data)
}
