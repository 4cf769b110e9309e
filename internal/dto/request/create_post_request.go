package request

// CreatePostRequest 게시글(특허) 등록 요청
type CreatePostRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required,oneof=PRODUCT METHOD USE DESIGN TRADEMARK COPYRIGHT ETC"`
	Price       int    `json:"price" binding:"required,min=0"`
}
