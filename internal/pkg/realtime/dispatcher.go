package realtime

import (
	"context"
)

//go:generate mockgen -destination=../../mocks/dispatcher_mock.go -package=mocks Parley/internal/pkg/realtime Dispatcher

// Dispatcher 实时推送出口，投递是尽力而为的，失败不影响业务结果
type Dispatcher interface {
	IsConnected(userID uint64) bool
	Deliver(ctx context.Context, userID uint64, evt *Event) error
}

// LocalDispatcher 单进程模式，直接写入本机 Hub
type LocalDispatcher struct {
	hub *Hub
}

func NewLocalDispatcher(hub *Hub) *LocalDispatcher {
	return &LocalDispatcher{hub: hub}
}

func (d *LocalDispatcher) IsConnected(userID uint64) bool {
	return d.hub.IsConnected(userID)
}

// Deliver 用户不在线时静默返回
func (d *LocalDispatcher) Deliver(ctx context.Context, userID uint64, evt *Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !d.hub.IsConnected(userID) {
		return nil
	}
	payload, err := evt.Encode()
	if err != nil {
		return err
	}
	d.hub.Push(userID, payload)
	return nil
}
