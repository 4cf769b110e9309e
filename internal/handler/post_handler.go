// 게시글(특허 매물) API
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/dto/request"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/service"
)

// PostHandler 게시글 요청 처리기
type PostHandler struct {
	postSvc service.PostService
}

// NewPostHandler 생성자
func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{postSvc: postSvc}
}

// Create 게시글 등록
// POST /api/posts
func (h *PostHandler) Create(c *gin.Context) {
	var req request.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.postSvc.CreatePost(CurrentMemberId(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleCreated(c, "게시글이 등록되었습니다.", data)
}

// List 게시글 목록 (최신순, 카테고리 필터)
// GET /api/posts?category=PRODUCT&page=1&pageSize=20
func (h *PostHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	category := c.Query("category")

	posts, total, err := h.postSvc.GetPostList(category, page, pageSize)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, "조회되었습니다.", gin.H{
		"posts": posts,
		"total": total,
		"page":  page,
	})
}

// Get 게시글 상세
// GET /api/posts/:postId
func (h *PostHandler) Get(c *gin.Context) {
	postId, err := ParseUintParam(c, "postId")
	if err != nil {
		HandleError(c, err)
		return
	}
	data, err := h.postSvc.GetPost(postId, CurrentMemberId(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, "조회되었습니다.", data)
}

// MyList 내 게시글 목록
// GET /api/posts/me
func (h *PostHandler) MyList(c *gin.Context) {
	data, err := h.postSvc.GetMyPostList(CurrentMemberId(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, "조회되었습니다.", data)
}

// Update 게시글 수정
// PUT /api/posts/:postId
func (h *PostHandler) Update(c *gin.Context) {
	postId, err := ParseUintParam(c, "postId")
	if err != nil {
		HandleError(c, err)
		return
	}
	var req request.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.postSvc.UpdatePost(CurrentMemberId(c), postId, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, "수정되었습니다.", data)
}

// Delete 게시글 삭제
// DELETE /api/posts/:postId
func (h *PostHandler) Delete(c *gin.Context) {
	postId, err := ParseUintParam(c, "postId")
	if err != nil {
		HandleError(c, err)
		return
	}
	if err := h.postSvc.DeletePost(CurrentMemberId(c), postId); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, "삭제되었습니다.", nil)
}
