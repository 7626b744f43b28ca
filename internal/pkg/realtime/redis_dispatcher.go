package realtime

import (
	"Parley/internal/pkg/consts"
	"context"
	log "log/slog"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
)

// RedisDispatcher 多实例模式：事件发布到用户频道，由各实例的 Bridge 转交本机 Hub
type RedisDispatcher struct {
	rdb *redis.Client
	hub *Hub
}

func NewRedisDispatcher(rdb *redis.Client, hub *Hub) *RedisDispatcher {
	return &RedisDispatcher{rdb: rdb, hub: hub}
}

// IsConnected 只反映本实例的在线状态
func (d *RedisDispatcher) IsConnected(userID uint64) bool {
	return d.hub.IsConnected(userID)
}

// Deliver 无人订阅的频道发布即丢弃，等价于用户不在线
func (d *RedisDispatcher) Deliver(ctx context.Context, userID uint64, evt *Event) error {
	payload, err := evt.Encode()
	if err != nil {
		return err
	}
	return d.rdb.Publish(ctx, UserChannel(userID), payload).Err()
}

// UserChannel 用户个人频道
func UserChannel(userID uint64) string {
	return consts.IMUserKey + strconv.FormatUint(userID, 10)
}

// Bridge 订阅所有用户频道，把消息投递给本机在线的连接
type Bridge struct {
	rdb *redis.Client
	hub *Hub
}

func NewBridge(rdb *redis.Client, hub *Hub) *Bridge {
	return &Bridge{rdb: rdb, hub: hub}
}

// Run 阻塞直到 ctx 结束
func (b *Bridge) Run(ctx context.Context) error {
	pubsub := b.rdb.PSubscribe(ctx, consts.IMUserKey+"*")
	defer func() {
		_ = pubsub.Close()
	}()

	// 确认订阅成功后再进入循环
	if _, err := pubsub.Receive(ctx); err != nil {
		return err
	}
	log.Info("IM redis bridge subscribed", "pattern", consts.IMUserKey+"*")

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			log.Info("IM redis bridge stopping...")
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			userID, err := strconv.ParseUint(strings.TrimPrefix(msg.Channel, consts.IMUserKey), 10, 64)
			if err != nil {
				log.Warn("IM redis bridge got malformed channel", "channel", msg.Channel)
				continue
			}
			b.hub.Push(userID, []byte(msg.Payload))
		}
	}
}
