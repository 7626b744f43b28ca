package model

import (
	"fmt"
	"time"
)

// Conversation 单聊会话主表，一对用户至多一条
type Conversation struct {
	ID               uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	PeerKey          string    `gorm:"uniqueIndex;type:varchar(64);not null" json:"peerKey"` // min_max
	ParticipantOneID uint64    `gorm:"not null;index" json:"participantOneId"`               // 较小的用户 ID
	ParticipantTwoID uint64    `gorm:"not null;index" json:"participantTwoId"`               // 较大的用户 ID
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `gorm:"index" json:"updatedAt"` // 每条新消息都会刷新
}

func (Conversation) TableName() string { return "conversations" }

// HasParticipant 判断用户是否为会话成员
func (c *Conversation) HasParticipant(userID uint64) bool {
	return c.ParticipantOneID == userID || c.ParticipantTwoID == userID
}

// OtherParticipant 返回会话中的另一方
func (c *Conversation) OtherParticipant(userID uint64) uint64 {
	if c.ParticipantOneID == userID {
		return c.ParticipantTwoID
	}
	return c.ParticipantOneID
}

// PeerKey 生成单聊唯一标识，与参数顺序无关
func PeerKey(a, b uint64) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d_%d", a, b)
}

// NewConversation 按规范顺序构造会话
func NewConversation(a, b uint64) *Conversation {
	if a > b {
		a, b = b, a
	}
	return &Conversation{
		PeerKey:          PeerKey(a, b),
		ParticipantOneID: a,
		ParticipantTwoID: b,
	}
}
