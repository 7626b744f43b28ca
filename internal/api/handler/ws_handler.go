package handler

import (
	"Parley/internal/api/dto"
	"Parley/internal/api/middleware"
	"Parley/internal/pkg/logger"
	"Parley/internal/pkg/realtime"
	"Parley/internal/pkg/response"
	"Parley/internal/pkg/util"
	"Parley/internal/service"
	"context"
	"errors"
	log "log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

const (
	actionPing     = "ping"
	actionMarkRead = "mark-read"

	frameTimeout = 5 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type WsHandler struct {
	imService  service.IMService
	hub        *realtime.Hub
	sendBuffer int
}

func NewWsHandler(im service.IMService, hub *realtime.Hub, sendBuffer int) *WsHandler {
	return &WsHandler{imService: im, hub: hub, sendBuffer: sendBuffer}
}

// Connect 建立 WebSocket 连接，阻塞直到客户端断开
func (s *WsHandler) Connect(c *gin.Context) {
	token := middleware.BearerToken(c)
	if token == "" {
		response.Fail(c, response.Unauthorized, "Token 缺失或格式错误")
		return
	}
	claims, err := middleware.Authenticate(c.Request.Context(), token)
	if err != nil {
		log.WarnContext(c.Request.Context(), "WS 鉴权失败", "err", err)
		response.Fail(c, response.Unauthorized, "Token 无效或已过期")
		return
	}
	userID := claims.UserID

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.ErrorContext(c.Request.Context(), "WS 协议升级失败", "err", err)
		return
	}

	// 请求上下文随 handler 返回而取消，帧处理使用独立的根上下文
	ctx := logger.WithTraceID(context.Background(), logger.TraceID(c.Request.Context()))

	session := realtime.NewSession(userID, ws, s.sendBuffer)
	count := s.hub.Register(userID, session)
	log.InfoContext(ctx, "WS 连接建立", "userID", userID, "session", session.SessionID(), "userSessions", count)

	go session.WritePump()

	s.reply(ctx, session, realtime.EventConnected, s.status(userID))

	session.ReadPump(func(data []byte) {
		s.handleFrame(ctx, session, userID, data)
	})

	s.hub.Unregister(userID, session)
	log.InfoContext(ctx, "WS 连接断开", "userID", userID, "session", session.SessionID())
}

func (s *WsHandler) handleFrame(ctx context.Context, session *realtime.Session, userID uint64, data []byte) {
	var in dto.WsInbound
	if err := json.Unmarshal(data, &in); err != nil {
		s.reply(ctx, session, realtime.EventError, &dto.WsError{Code: service.BadRequest, Message: service.ErrParamInvalid.Error()})
		return
	}
	if err := util.ValidateDTO(&in); err != nil {
		s.reply(ctx, session, realtime.EventError, &dto.WsError{Code: service.BadRequest, Message: err.Error()})
		return
	}

	switch in.Action {
	case actionPing:
		s.reply(ctx, session, realtime.EventPong, s.status(userID))
	case actionMarkRead:
		frameCtx, cancel := context.WithTimeout(ctx, frameTimeout)
		defer cancel()
		if err := s.imService.MarkMessageRead(frameCtx, userID, in.MessageID); err != nil {
			code, message := response.Resolve(ctx, err)
			s.reply(ctx, session, realtime.EventError, &dto.WsError{Code: code, Message: message})
		}
	}
}

func (s *WsHandler) status(userID uint64) *dto.ConnectionStatusDTO {
	return &dto.ConnectionStatusDTO{
		Connected:         s.hub.IsConnected(userID),
		ActiveConnections: s.hub.ConnectionCount(),
	}
}

func (s *WsHandler) reply(ctx context.Context, session *realtime.Session, eventType string, data any) {
	payload, err := realtime.NewEvent(eventType, data).Encode()
	if err != nil {
		log.ErrorContext(ctx, "WS 事件编码失败", "type", eventType, "err", err)
		return
	}
	if err = session.Send(payload); err != nil && !errors.Is(err, realtime.ErrSessionClosed) {
		log.WarnContext(ctx, "WS 回包失败", "session", session.SessionID(), "err", err)
	}
}
