package consts

const (
	DefaultAvatarURL = "default_avatar.png"
)

const (
	DefaultPageSize  = 20
	MaxPageSize      = 100
	MaxContentLength = 1000
)
