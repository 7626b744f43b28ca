package middleware

import (
	"Parley/internal/pkg/consts"
	"Parley/internal/pkg/redis"
	"Parley/internal/pkg/security"
	"Parley/internal/pkg/security/securitytest"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupAuth(t *testing.T) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	redis.SetRdbClient(rdb)

	r := gin.New()
	r.GET("/me", AuthMiddleware(), func(c *gin.Context) {
		ctxID, _ := c.Request.Context().Value(UserIDKey).(uint64)
		c.JSON(http.StatusOK, gin.H{"code": 200, "data": gin.H{"user_id": c.GetUint64(UserIDKey), "ctx_user_id": ctxID}})
	})
	return r, mr
}

func do(r *gin.Engine, req *http.Request) envelope {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return env
}

func TestAuthMiddleware_BearerHeader(t *testing.T) {
	req := require.New(t)
	r, _ := setupAuth(t)

	token := securitytest.Token(t, 42)

	httpReq := httptest.NewRequest(http.MethodGet, "/me", nil)
	httpReq.Header.Set("Authorization", "Bearer "+token)
	env := do(r, httpReq)
	req.Equal(200, env.Code)
	req.JSONEq(`{"user_id":42,"ctx_user_id":42}`, string(env.Data))
}

func TestAuthMiddleware_QueryToken(t *testing.T) {
	req := require.New(t)
	r, _ := setupAuth(t)

	token := securitytest.Token(t, 7)

	env := do(r, httptest.NewRequest(http.MethodGet, "/me?token="+token, nil))
	req.Equal(200, env.Code)
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	req := require.New(t)
	r, mr := setupAuth(t)

	env := do(r, httptest.NewRequest(http.MethodGet, "/me", nil))
	req.Equal(401, env.Code)

	httpReq := httptest.NewRequest(http.MethodGet, "/me", nil)
	httpReq.Header.Set("Authorization", "Bearer not-a-jwt")
	req.Equal(401, do(r, httpReq).Code)

	token := securitytest.Token(t, 42)
	signature, err := security.ExtractSignature(token)
	req.NoError(err)
	req.NoError(mr.Set(consts.TokenRevokedKey+signature, "1"))

	httpReq = httptest.NewRequest(http.MethodGet, "/me", nil)
	httpReq.Header.Set("Authorization", "Bearer "+token)
	env = do(r, httpReq)
	req.Equal(401, env.Code)
	req.Equal(errTokenInvalid.Error(), env.Message)
}

func TestAuthenticate_RedisDown(t *testing.T) {
	req := require.New(t)
	_, mr := setupAuth(t)
	token := securitytest.Token(t, 42)

	mr.Close()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := Authenticate(ctx, token)
	req.Error(err)
	req.NotErrorIs(err, errTokenInvalid)
}

func TestAuditMiddleware_SkipsPath(t *testing.T) {
	req := require.New(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceMiddleware(), AuditMiddleware("/ws"))
	r.GET("/ws", func(c *gin.Context) { c.String(http.StatusOK, "skip") })
	r.POST("/echo", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ws", nil))
	req.Equal("skip", w.Body.String())
	req.NotEmpty(w.Header().Get("X-Trace-ID"))

	w = httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodPost, "/echo", nil)
	httpReq.Header.Set("X-Trace-ID", "trace-1")
	r.ServeHTTP(w, httpReq)
	req.Equal("ok", w.Body.String())
	req.Equal("trace-1", w.Header().Get("X-Trace-ID"))
}
