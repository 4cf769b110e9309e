package respond

import (
	"time"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/model"
)

// MemberRespond 회원 정보 응답
type MemberRespond struct {
	Id         uint      `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Status     string    `json:"status"`
	ProfileUrl string    `json:"profileUrl"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewMemberRespond 모델 -> 응답 변환
func NewMemberRespond(m *model.Member) *MemberRespond {
	return &MemberRespond{
		Id:         m.ID,
		Email:      m.Email,
		Name:       m.Name,
		Role:       m.Role,
		Status:     m.Status,
		ProfileUrl: m.ProfileUrl,
		CreatedAt:  m.CreatedAt,
	}
}
