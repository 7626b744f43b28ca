package dto

import "time"

// SendMessageReq 发送消息请求体，content 的空白与长度校验在业务层完成
type SendMessageReq struct {
	ReceiverID uint64 `json:"receiver_id" binding:"required"`
	Content    string `json:"content"`
}

// MessageDTO 消息明细响应
type MessageDTO struct {
	ID             string    `json:"id"`
	ConversationID uint64    `json:"conversation_id"`
	SenderID       uint64    `json:"sender_id"`
	Content        string    `json:"content"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}

// ConversationDTO 会话列表项响应
type ConversationDTO struct {
	ConversationID     uint64         `json:"conversation_id"`
	OtherParticipantID uint64         `json:"other_participant_id"`
	OtherParticipant   *UserSimpleDTO `json:"other_participant"`
	LatestMessage      *MessageDTO    `json:"latest_message"`
	UnreadCount        int64          `json:"unread_count"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// UnreadCountDTO 未读总数
type UnreadCountDTO struct {
	TotalUnreadCount int64 `json:"total_unread_count"`
}

// MarkReadResultDTO 会话批量已读结果
type MarkReadResultDTO struct {
	UpdatedCount int64 `json:"updated_count"`
}

// ReadStatusDTO 已读回执，推送给发送方
type ReadStatusDTO struct {
	MessageID      string `json:"message_id"`
	ConversationID uint64 `json:"conversation_id"`
	IsRead         bool   `json:"is_read"`
}

// ConnectionStatusDTO 连接状态
type ConnectionStatusDTO struct {
	Connected         bool `json:"connected"`
	ActiveConnections int  `json:"active_connections"`
}

// WsInbound 客户端上行帧
type WsInbound struct {
	Action    string `json:"action" validate:"required,oneof=ping mark-read"`
	MessageID string `json:"message_id" validate:"required_if=Action mark-read"`
}

// WsError 下行错误帧
type WsError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
