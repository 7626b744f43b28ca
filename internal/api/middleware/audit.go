package middleware

import (
	"bytes"
	"io"
	log "log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
)

const maxAuditBody = 4096

type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r *bodyRecorder) Write(b []byte) (int, error) {
	if room := maxAuditBody - r.body.Len(); room > 0 {
		if len(b) > room {
			r.body.Write(b[:room])
		} else {
			r.body.Write(b)
		}
	}
	return r.ResponseWriter.Write(b)
}

func (r *bodyRecorder) Flush() {
	if flusher, ok := r.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// AuditMiddleware 每个请求在结束时记录一条审计日志，skipPaths 中的路径（WebSocket 握手）不记录
func AuditMiddleware(skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		reqBody := peekBody(c.Request)
		query, err := url.QueryUnescape(c.Request.URL.RawQuery)
		if err != nil {
			query = c.Request.URL.RawQuery
		}

		rec := &bodyRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = rec
		start := time.Now()

		c.Next()

		log.InfoContext(c.Request.Context(), "HTTP Audit",
			log.String("method", c.Request.Method),
			log.String("path", c.Request.URL.Path),
			log.String("query", query),
			log.Uint64("user_id", c.GetUint64(UserIDKey)),
			log.Int("status", rec.Status()),
			log.Duration("latency", time.Since(start)),
			log.String("req_body", reqBody),
			log.String("res_body", rec.body.String()),
		)
	}
}

// peekBody 读取请求体后放回，供后续 handler 绑定
func peekBody(r *http.Request) string {
	if r.Body == nil || r.Body == http.NoBody {
		return ""
	}
	data, err := io.ReadAll(r.Body)
	r.Body = io.NopCloser(bytes.NewReader(data))
	if err != nil {
		return ""
	}
	if len(data) > maxAuditBody {
		return string(data[:maxAuditBody]) + "...[truncated]"
	}
	return string(data)
}
