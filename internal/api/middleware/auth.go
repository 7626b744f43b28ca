package middleware

import (
	"Parley/internal/pkg/consts"
	"Parley/internal/pkg/redis"
	"Parley/internal/pkg/response"
	"Parley/internal/pkg/security"
	"context"
	"errors"
	log "log/slog"
	"strings"

	"github.com/gin-gonic/gin"
)

// UserIDKey 鉴权通过后写入 gin.Context 的用户 ID
const UserIDKey = "user_id"

var (
	errTokenMissing = errors.New("Token 缺失或格式错误")
	errTokenInvalid = errors.New("Token 无效或已过期")
)

// Authenticate 校验签名是否被吊销以及 Token 本身
func Authenticate(ctx context.Context, tokenString string) (*security.UserClaims, error) {
	signature, err := security.ExtractSignature(tokenString)
	if err != nil {
		return nil, errTokenMissing
	}

	revoked, err := redis.Exists(ctx, consts.TokenRevokedKey+signature)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, errTokenInvalid
	}

	claims, err := security.ValidateToken(tokenString)
	if err != nil {
		return nil, errTokenInvalid
	}
	return claims, nil
}

// BearerToken 优先读取 Authorization 头，WebSocket 握手时退回 token 查询参数
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return c.Query("token")
}

// AuthMiddleware 负责验证 JWT 并将用户身份信息注入 Context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := BearerToken(c)
		if tokenString == "" {
			response.Fail(c, response.Unauthorized, errTokenMissing.Error())
			c.Abort()
			return
		}

		claims, err := Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			if errors.Is(err, errTokenMissing) || errors.Is(err, errTokenInvalid) {
				response.Fail(c, response.Unauthorized, err.Error())
			} else {
				log.ErrorContext(c.Request.Context(), "auth check failed", "err", err)
				response.Fail(c, response.InternalServerError, "未知错误")
			}
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)

		newCtx := context.WithValue(c.Request.Context(), UserIDKey, claims.UserID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
