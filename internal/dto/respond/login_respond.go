package respond

// LoginRespond 로그인/토큰 재발급 응답
type LoginRespond struct {
	AccessToken  string         `json:"accessToken"`
	RefreshToken string         `json:"refreshToken"`
	Member       *MemberRespond `json:"member,omitempty"`
}
