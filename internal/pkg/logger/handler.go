package logger

import (
	"context"
	"errors"
	log "log/slog"
)

// TeeHandler 同一条记录写入多个 Handler，单个失败不影响其余
type TeeHandler struct {
	handlers []log.Handler
}

func NewTeeHandler(handlers ...log.Handler) *TeeHandler {
	return &TeeHandler{handlers: handlers}
}

func (s *TeeHandler) Enabled(ctx context.Context, level log.Level) bool {
	for _, h := range s.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (s *TeeHandler) Handle(ctx context.Context, r log.Record) error {
	var errs []error
	for _, h := range s.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *TeeHandler) WithAttrs(attrs []log.Attr) log.Handler {
	return s.derive(func(h log.Handler) log.Handler { return h.WithAttrs(attrs) })
}

func (s *TeeHandler) WithGroup(name string) log.Handler {
	return s.derive(func(h log.Handler) log.Handler { return h.WithGroup(name) })
}

func (s *TeeHandler) derive(fn func(log.Handler) log.Handler) *TeeHandler {
	next := make([]log.Handler, len(s.handlers))
	for i, h := range s.handlers {
		next[i] = fn(h)
	}
	return &TeeHandler{handlers: next}
}

// TracedOnlyHandler 只转发带 trace_id 的记录，后台任务与推送协程之外的噪音留在本地
type TracedOnlyHandler struct {
	next log.Handler
}

func NewTracedOnlyHandler(next log.Handler) *TracedOnlyHandler {
	return &TracedOnlyHandler{next: next}
}

func (s *TracedOnlyHandler) Enabled(ctx context.Context, level log.Level) bool {
	return s.next.Enabled(ctx, level)
}

func (s *TracedOnlyHandler) Handle(ctx context.Context, r log.Record) error {
	if TraceID(ctx) == "" && !recordHasTrace(r) {
		return nil
	}
	return s.next.Handle(ctx, r)
}

func (s *TracedOnlyHandler) WithAttrs(attrs []log.Attr) log.Handler {
	return &TracedOnlyHandler{next: s.next.WithAttrs(attrs)}
}

func (s *TracedOnlyHandler) WithGroup(name string) log.Handler {
	return &TracedOnlyHandler{next: s.next.WithGroup(name)}
}

func recordHasTrace(r log.Record) bool {
	found := false
	r.Attrs(func(a log.Attr) bool {
		if a.Key == TraceIDKey && a.Value.String() != "" {
			found = true
			return false
		}
		return true
	})
	return found
}
