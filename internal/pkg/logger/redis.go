package logger

import (
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"net"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisSlowThreshold = 100 * time.Millisecond

// RedisLoggerHook 只记录失败与慢命令
type RedisLoggerHook struct {
	SlowThreshold time.Duration
}

func NewRedisLogger() *RedisLoggerHook {
	return &RedisLoggerHook{SlowThreshold: redisSlowThreshold}
}

func (s *RedisLoggerHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		start := time.Now()
		conn, err := next(ctx, network, addr)
		if err != nil {
			log.ErrorContext(ctx, "Redis Dial Error", "addr", addr, "latency", time.Since(start), "err", err)
		}
		return conn, err
	}
}

func (s *RedisLoggerHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		elapsed := time.Since(start)

		switch {
		case err != nil && !ignorableRedisErr(cmd, err):
			log.ErrorContext(ctx, "Redis Error", "command", cmd.Name(), "args", redactArgs(cmd), "latency", elapsed, "err", err)
		case err == nil && s.SlowThreshold > 0 && elapsed > s.SlowThreshold:
			log.WarnContext(ctx, "Redis Slow", "command", cmd.Name(), "args", redactArgs(cmd), "latency", elapsed)
		}
		return err
	}
}

func (s *RedisLoggerHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmds)
		if err != nil && !errors.Is(err, redis.Nil) {
			log.ErrorContext(ctx, "Redis Pipeline Error", "cmd_count", len(cmds), "latency", time.Since(start), "err", err)
		}
		return err
	}
}

func ignorableRedisErr(cmd redis.Cmder, err error) bool {
	if errors.Is(err, redis.Nil) {
		return true
	}
	// 旧版本服务端不支持 CLIENT SETINFO
	return cmd.Name() == "client" && strings.Contains(err.Error(), "setinfo")
}

// redactArgs 凭据不落日志，推送负载只记录长度
func redactArgs(cmd redis.Cmder) string {
	args := cmd.Args()
	switch cmd.Name() {
	case "auth", "hello":
		return "[PROTECTED]"
	case "publish":
		if len(args) == 3 {
			return fmt.Sprintf("[publish %v <%d bytes>]", args[1], len(fmt.Sprint(args[2])))
		}
	}
	return fmt.Sprint(args)
}
