package security

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v5"
)

const (
	defaultJWTSecret = "Parley"
	defaultJWTIssuer = "Parley"
)

// UserClaims Token 载荷，由身份服务签发，私信服务只校验并读取 UserID
type UserClaims struct {
	UserID uint64   `json:"user_id"`
	Roles  []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

var (
	keyMu     sync.RWMutex
	jwtSecret = []byte(defaultJWTSecret)
	jwtIssuer = defaultJWTIssuer
)

// Setup 使用配置中的密钥与签发者，空值保持默认
func Setup(secret, issuer string) {
	keyMu.Lock()
	defer keyMu.Unlock()
	if secret != "" {
		jwtSecret = []byte(secret)
	}
	if issuer != "" {
		jwtIssuer = issuer
	}
}

func signingKey() ([]byte, string) {
	keyMu.RLock()
	defer keyMu.RUnlock()
	return jwtSecret, jwtIssuer
}

// ValidateToken 验证 Token 字符串并解析出 Claims
func ValidateToken(tokenString string) (*UserClaims, error) {
	secret, issuer := signingKey()
	claims := &UserClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("非预期的签名方法: %v", token.Header["alg"])
		}
		return secret, nil
	}, jwt.WithIssuer(issuer))

	if err != nil {
		return nil, fmt.Errorf("token 解析失败: %w", err)
	}

	if !token.Valid || claims.UserID == 0 {
		return nil, errors.New("token 无效或已过期")
	}

	return claims, nil
}

// ExtractSignature 从 Token 字符串中提取签名
func ExtractSignature(tokenString string) (string, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 || parts[2] == "" {
		return "", errors.New("token 格式不正确")
	}
	return parts[2], nil
}
