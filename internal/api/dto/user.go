package dto

// UserSimpleDTO 会话中展示的对方信息
type UserSimpleDTO struct {
	UserID    uint64 `json:"user_id"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatar_url"`
}
