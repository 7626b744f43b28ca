package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message MongoDB 私信明细模型
type Message struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`               // MongoDB 自动生成的 ObjectID
	ConversationID uint64             `bson:"conversation_id" json:"conversationId"` // 关联 MySQL 的会话 ID
	SenderID       uint64             `bson:"sender_id" json:"senderId"`             // 发送者 UID
	Content        string             `bson:"content" json:"content"`                // 文本内容
	IsRead         bool               `bson:"is_read" json:"isRead"`                 // 只会从 false 变为 true
	CreatedAt      time.Time          `bson:"created_at" json:"createdAt"`           // 消息发送时间
}

// UnreadStat 按会话聚合的未读数
type UnreadStat struct {
	ConversationID uint64 `bson:"_id"`
	Count          int64  `bson:"count"`
}
