package consts

const (
	UserSimpleInfoKey = "user:simple:info:"
	TokenRevokedKey   = "token:revoked:"
	IMUserKey         = "im:user:"
)
