package request

// BlockMemberRequest 관리자 회원 차단/해제 요청
type BlockMemberRequest struct {
	Blocked bool `json:"blocked"`
}
