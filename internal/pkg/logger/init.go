package logger

import (
	"Parley/internal/api/config"
	"io"
	log "log/slog"
	"net"
	"os"
	"time"
)

// LogWriter gin 访问日志的输出目标，与 slog 保持一致
var LogWriter io.Writer = os.Stdout

const logstashDialTimeout = 3 * time.Second

// InitLogger 标准输出，配置了 Logstash 地址时额外上报带 trace_id 的记录
func InitLogger(cfg config.LogstashConfig) {
	opts := &log.HandlerOptions{Level: log.LevelInfo}
	stdout := log.NewJSONHandler(os.Stdout, opts)
	LogWriter = os.Stdout

	if cfg.Address == "" {
		log.SetDefault(log.New(&ContextHandler{stdout}))
		return
	}

	conn, err := net.DialTimeout("tcp", cfg.Address, logstashDialTimeout)
	if err != nil {
		log.SetDefault(log.New(&ContextHandler{stdout}))
		log.Warn("Failed to connect to Logstash, logging to stdout only", "addr", cfg.Address, "err", err)
		return
	}

	remote := log.NewJSONHandler(conn, opts).WithAttrs([]log.Attr{
		log.String("target_index", cfg.Index),
		log.String("log_token", cfg.Token),
	})
	LogWriter = io.MultiWriter(os.Stdout, conn)
	log.SetDefault(log.New(&ContextHandler{NewTeeHandler(stdout, NewTracedOnlyHandler(remote))}))
	log.Info("Logstash connected", "addr", cfg.Address, "index", cfg.Index)
}
