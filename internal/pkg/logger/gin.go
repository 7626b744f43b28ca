package logger

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

type accessLine struct {
	Time        string `json:"time"`
	Level       string `json:"level"`
	Msg         string `json:"msg"`
	TraceID     string `json:"trace_id,omitempty"`
	LogToken    string `json:"log_token,omitempty"`
	TargetIndex string `json:"target_index,omitempty"`
	Method      string `json:"method"`
	Path        string `json:"path"`
	Status      int    `json:"status"`
	Latency     string `json:"latency"`
	ClientIP    string `json:"client_ip"`
	Error       string `json:"error,omitempty"`
}

// SetupGin 访问日志与 Recovery；WebSocket 长连接不写访问日志
func SetupGin(r *gin.Engine, token, index string) {
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Output:    LogWriter,
		SkipPaths: []string{"/api/im/ws"},
		Formatter: func(p gin.LogFormatterParams) string {
			return formatAccess(p, token, index)
		},
	}))
	r.Use(gin.Recovery())
}

func formatAccess(p gin.LogFormatterParams, token, index string) string {
	line := accessLine{
		Time:        p.TimeStamp.Format(time.RFC3339),
		Level:       "INFO",
		Msg:         "GIN_ACCESS",
		TraceID:     accessTraceID(p),
		LogToken:    token,
		TargetIndex: index,
		Method:      p.Method,
		Path:        p.Path,
		Status:      p.StatusCode,
		Latency:     p.Latency.String(),
		ClientIP:    p.ClientIP,
		Error:       p.ErrorMessage,
	}
	if p.StatusCode >= 500 {
		line.Level = "ERROR"
	}
	data, err := json.Marshal(line)
	if err != nil {
		return ""
	}
	return string(data) + "\n"
}

func accessTraceID(p gin.LogFormatterParams) string {
	if id, ok := p.Keys[TraceIDKey].(string); ok && id != "" {
		return id
	}
	if p.Request != nil {
		return TraceID(p.Request.Context())
	}
	return ""
}
