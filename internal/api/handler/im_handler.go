package handler

import (
	"Parley/internal/api/dto"
	"Parley/internal/api/middleware"
	"Parley/internal/pkg/realtime"
	"Parley/internal/pkg/response"
	"Parley/internal/pkg/util"
	"Parley/internal/service"

	"github.com/gin-gonic/gin"
)

type IMHandler struct {
	imService service.IMService
	hub       *realtime.Hub
}

func NewIMHandler(imService service.IMService, hub *realtime.Hub) *IMHandler {
	return &IMHandler{imService: imService, hub: hub}
}

// SendMessage 发送消息接口
func (s *IMHandler) SendMessage(c *gin.Context) {
	var req dto.SendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	senderID := c.GetUint64(middleware.UserIDKey)

	res, err := s.imService.SendMessage(c.Request.Context(), senderID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// GetConversationList 获取会话列表
func (s *IMHandler) GetConversationList(c *gin.Context) {
	userID := c.GetUint64(middleware.UserIDKey)
	res, err := s.imService.GetConversationList(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// GetChatHistory 分页获取会话消息，page 从 0 开始
func (s *IMHandler) GetChatHistory(c *gin.Context) {
	convID, ok := util.ParseUint64(c.Param("conversation_id"))
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	page := util.AtoiDefault(c.Query("page"), 0)
	pageSize := util.AtoiDefault(c.Query("page_size"), 0)

	userID := c.GetUint64(middleware.UserIDKey)
	res, err := s.imService.GetChatHistory(c.Request.Context(), userID, convID, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// MarkConversationRead 将会话中发给自己的未读消息全部置为已读
func (s *IMHandler) MarkConversationRead(c *gin.Context) {
	convID, ok := util.ParseUint64(c.Param("conversation_id"))
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	userID := c.GetUint64(middleware.UserIDKey)
	updated, err := s.imService.MarkConversationRead(c.Request.Context(), userID, convID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.MarkReadResultDTO{UpdatedCount: updated})
}

// MarkMessageRead 单条消息已读
func (s *IMHandler) MarkMessageRead(c *gin.Context) {
	userID := c.GetUint64(middleware.UserIDKey)
	if err := s.imService.MarkMessageRead(c.Request.Context(), userID, c.Param("message_id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetUnreadCount 未读总数
func (s *IMHandler) GetUnreadCount(c *gin.Context) {
	userID := c.GetUint64(middleware.UserIDKey)
	res, err := s.imService.GetTotalUnreadCount(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// Status 当前用户是否在线以及本实例的连接数
func (s *IMHandler) Status(c *gin.Context) {
	userID := c.GetUint64(middleware.UserIDKey)
	response.Success(c, &dto.ConnectionStatusDTO{
		Connected:         s.hub.IsConnected(userID),
		ActiveConnections: s.hub.ConnectionCount(),
	})
}
