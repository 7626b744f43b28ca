package kafka

import (
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

// UserDetailHandler 监听 user_detail 表，昵称或头像变化时清理身份缓存
type UserDetailHandler struct {
	cache CacheInvalidator
}

func NewUserDetailHandler(cache CacheInvalidator) *UserDetailHandler {
	return &UserDetailHandler{cache: cache}
}

func (s *UserDetailHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("user detail consumer setup")
	return nil
}

func (s *UserDetailHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("user detail consumer cleanup")
	return nil
}

func (s *UserDetailHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-user-detail consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-user-detail process batch error", "err", err)
		return err
	}
	log.Info("topic-user-detail consume claim end")
	return nil
}

func (s *UserDetailHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "user_detail")
	if err != nil {
		return err
	}

	ids := make([]uint64, 0, len(canalMsg.Data))
	for i, row := range canalMsg.Data {
		if !canalMsg.ColumnChanged(i, "nickname", "avatar_url") {
			continue
		}
		if id := StrToUint64(row["user_id"]); id != 0 {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	if err = s.cache.InvalidateSimpleInfo(ctx, ids...); err != nil {
		return errors.Wrapf(err, "invalidate user_detail cache %v", ids)
	}
	return nil
}
