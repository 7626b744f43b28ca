// Package securitytest 为测试签发 Token，生产环境的 Token 由外部身份服务签发
package securitytest

import (
	"Parley/internal/pkg/security"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const (
	Secret = "parley-test-secret"
	Issuer = "Parley"
)

// Token 切换到测试密钥并签发一个有效期一小时的 Token
func Token(t testing.TB, userID uint64, roles ...string) string {
	t.Helper()
	security.Setup(Secret, Issuer)

	now := time.Now()
	claims := &security.UserClaims{
		UserID: userID,
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    Issuer,
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(Secret))
	require.NoError(t, err)
	return token
}
