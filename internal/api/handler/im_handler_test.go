package handler

import (
	"Parley/internal/api/dto"
	"Parley/internal/api/middleware"
	"Parley/internal/mocks"
	"Parley/internal/pkg/realtime"
	"Parley/internal/service"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

const callerID uint64 = 1

func newIMRouter(t *testing.T) (*gin.Engine, *mocks.MockIMService, *realtime.Hub) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	imService := mocks.NewMockIMService(ctrl)
	hub := realtime.NewHub()
	h := NewIMHandler(imService, hub)

	r := gin.New()
	g := r.Group("/api/im", func(c *gin.Context) {
		c.Set(middleware.UserIDKey, callerID)
		c.Next()
	})
	g.POST("/send", h.SendMessage)
	g.GET("/conversations", h.GetConversationList)
	g.GET("/conversations/:conversation_id/messages", h.GetChatHistory)
	g.PUT("/conversations/:conversation_id/read", h.MarkConversationRead)
	g.PUT("/messages/:message_id/read", h.MarkMessageRead)
	g.GET("/unread-count", h.GetUnreadCount)
	g.GET("/status", h.Status)
	return r, imService, hub
}

func serve(r *gin.Engine, method, target, body string) envelope {
	httpReq := httptest.NewRequest(method, target, strings.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httpReq)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return env
}

func TestIMHandler_SendMessage(t *testing.T) {
	req := require.New(t)
	r, imService, _ := newIMRouter(t)

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	imService.EXPECT().
		SendMessage(gomock.Any(), callerID, &dto.SendMessageReq{ReceiverID: 2, Content: "hi"}).
		Return(&dto.MessageDTO{ID: "m1", ConversationID: 10, SenderID: callerID, Content: "hi", CreatedAt: created}, nil)

	env := serve(r, http.MethodPost, "/api/im/send", `{"receiver_id":2,"content":"hi"}`)
	req.Equal(200, env.Code)

	var msg dto.MessageDTO
	req.NoError(json.Unmarshal(env.Data, &msg))
	req.Equal("m1", msg.ID)
	req.False(msg.IsRead)
	req.True(created.Equal(msg.CreatedAt))
}

func TestIMHandler_SendMessageRejectsBadBody(t *testing.T) {
	req := require.New(t)
	r, _, _ := newIMRouter(t)

	env := serve(r, http.MethodPost, "/api/im/send", `{"content":"hi"}`)
	req.Equal(service.BadRequest, env.Code)
	req.Equal(service.ErrParamInvalid.Error(), env.Message)

	env = serve(r, http.MethodPost, "/api/im/send", `{"receiver_id":"x"}`)
	req.Equal(service.BadRequest, env.Code)
}

func TestIMHandler_ServiceErrorsMapToCodes(t *testing.T) {
	req := require.New(t)
	r, imService, _ := newIMRouter(t)

	imService.EXPECT().SendMessage(gomock.Any(), callerID, gomock.Any()).Return(nil, service.ErrSendToSelf)
	env := serve(r, http.MethodPost, "/api/im/send", `{"receiver_id":1,"content":"hi"}`)
	req.Equal(service.BadRequest, env.Code)
	req.Equal(service.ErrSendToSelf.Error(), env.Message)

	imService.EXPECT().GetConversationList(gomock.Any(), callerID).Return(nil, errors.New("mongo down"))
	env = serve(r, http.MethodGet, "/api/im/conversations", "")
	req.Equal(service.InternalServerError, env.Code)
	req.Equal(service.UnExpectedError.Error(), env.Message)

	imService.EXPECT().MarkMessageRead(gomock.Any(), callerID, "abc").Return(service.ErrNotParticipant)
	env = serve(r, http.MethodPut, "/api/im/messages/abc/read", "")
	req.Equal(service.Forbidden, env.Code)
}

func TestIMHandler_GetChatHistory(t *testing.T) {
	req := require.New(t)
	r, imService, _ := newIMRouter(t)

	env := serve(r, http.MethodGet, "/api/im/conversations/abc/messages", "")
	req.Equal(service.BadRequest, env.Code)

	imService.EXPECT().GetChatHistory(gomock.Any(), callerID, uint64(10), 2, 5).
		Return([]*dto.MessageDTO{{ID: "m1"}, {ID: "m2"}}, nil)
	env = serve(r, http.MethodGet, "/api/im/conversations/10/messages?page=2&page_size=5", "")
	req.Equal(200, env.Code)

	var msgs []*dto.MessageDTO
	req.NoError(json.Unmarshal(env.Data, &msgs))
	req.Len(msgs, 2)

	// 缺省的分页参数交给业务层归一化
	imService.EXPECT().GetChatHistory(gomock.Any(), callerID, uint64(10), 0, 0).Return([]*dto.MessageDTO{}, nil)
	env = serve(r, http.MethodGet, "/api/im/conversations/10/messages", "")
	req.Equal(200, env.Code)
	req.JSONEq(`[]`, string(env.Data))
}

func TestIMHandler_ReadAndCounts(t *testing.T) {
	req := require.New(t)
	r, imService, _ := newIMRouter(t)

	imService.EXPECT().MarkConversationRead(gomock.Any(), callerID, uint64(10)).Return(int64(3), nil)
	env := serve(r, http.MethodPut, "/api/im/conversations/10/read", "")
	req.Equal(200, env.Code)
	req.JSONEq(`{"updated_count":3}`, string(env.Data))

	imService.EXPECT().MarkMessageRead(gomock.Any(), callerID, "507f1f77bcf86cd799439011").Return(nil)
	env = serve(r, http.MethodPut, "/api/im/messages/507f1f77bcf86cd799439011/read", "")
	req.Equal(200, env.Code)

	imService.EXPECT().GetTotalUnreadCount(gomock.Any(), callerID).Return(&dto.UnreadCountDTO{TotalUnreadCount: 4}, nil)
	env = serve(r, http.MethodGet, "/api/im/unread-count", "")
	req.Equal(200, env.Code)
	req.JSONEq(`{"total_unread_count":4}`, string(env.Data))
}

func TestIMHandler_Status(t *testing.T) {
	req := require.New(t)
	r, _, _ := newIMRouter(t)

	env := serve(r, http.MethodGet, "/api/im/status", "")
	req.Equal(200, env.Code)
	req.JSONEq(`{"connected":false,"active_connections":0}`, string(env.Data))
}
