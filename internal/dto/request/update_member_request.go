package request

// UpdateMemberRequest 회원 정보 수정 요청. 비밀번호는 선택 입력
type UpdateMemberRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=30"`
	Password string `json:"password" binding:"omitempty,min=8,max=64"`
}
