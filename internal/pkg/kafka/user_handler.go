package kafka

import (
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

// CacheInvalidator 用户身份缓存失效
type CacheInvalidator interface {
	InvalidateSimpleInfo(ctx context.Context, userIDs ...uint64) error
}

// UserHandler 监听 users 表，封禁或注销时清理身份缓存
type UserHandler struct {
	cache CacheInvalidator
}

func NewUserHandler(cache CacheInvalidator) *UserHandler {
	return &UserHandler{cache: cache}
}

func (s *UserHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("user consumer setup")
	return nil
}

func (s *UserHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("user consumer cleanup")
	return nil
}

func (s *UserHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-user consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-user process batch error", "err", err)
		return err
	}
	log.Info("topic-user consume claim end")
	return nil
}

func (s *UserHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "users")
	if err != nil {
		return err
	}

	ids := make([]uint64, 0, len(canalMsg.Data))
	for i, row := range canalMsg.Data {
		if !canalMsg.ColumnChanged(i, "is_ban", "is_delete") {
			continue
		}
		if id := StrToUint64(row["id"]); id != 0 {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	if err = s.cache.InvalidateSimpleInfo(ctx, ids...); err != nil {
		return errors.Wrapf(err, "invalidate users cache %v", ids)
	}
	return nil
}
