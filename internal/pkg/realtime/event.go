package realtime

import (
	"github.com/goccy/go-json"
)

// 推送事件类型
const (
	EventNewMessage  = "new-message"
	EventUnreadCount = "unread-count-update"
	EventReadStatus  = "read-status-update"
	EventConnected   = "connected"
	EventPong        = "pong"
	EventError       = "error"
)

// Event 推送给客户端的统一信封
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

func NewEvent(eventType string, data any) *Event {
	return &Event{Type: eventType, Data: data}
}

func (e *Event) Encode() ([]byte, error) {
	return json.Marshal(e)
}
