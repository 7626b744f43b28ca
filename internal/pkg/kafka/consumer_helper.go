package kafka

import (
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"sync"
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

const (
	batchSize    = 32
	batchTimeout = 1 * time.Second

	retryBase = 100 * time.Millisecond
	retryMax  = 5 * time.Second
)

// ErrSkipMessage 无需重试的消息，直接提交
var ErrSkipMessage = errors.New("skip message")

type LogicFunc func(ctx context.Context, msg *sarama.ConsumerMessage) error

// pullMessageBatch 攒批消费，满批或超时即处理
func pullMessageBatch(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim, logic LogicFunc) error {
	batch := make([]*sarama.ConsumerMessage, 0, batchSize)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		processBatch(session, batch, logic)
		batch = make([]*sarama.ConsumerMessage, 0, batchSize)
	}

	ticker := time.NewTicker(batchTimeout)
	defer ticker.Stop()
	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				flush()
				return nil
			}
			batch = append(batch, msg)
			if len(batch) >= batchSize {
				flush()
				ticker.Reset(batchTimeout)
			}
		case <-ticker.C:
			flush()
		case <-session.Context().Done():
			return nil
		}
	}
}

// processBatch 并发处理一批消息，全部完成后提交最后一条的位点
func processBatch(session sarama.ConsumerGroupSession, messages []*sarama.ConsumerMessage, logic LogicFunc) {
	ctx := session.Context()

	var wg sync.WaitGroup
	for _, msg := range messages {
		wg.Add(1)
		go func(m *sarama.ConsumerMessage) {
			defer wg.Done()
			handleWithRetry(ctx, m, logic)
		}(msg)
	}
	wg.Wait()

	// 会话已结束时不提交，未完成的消息交给下一次 rebalance
	if ctx.Err() != nil || len(messages) == 0 {
		return
	}
	session.MarkMessage(messages[len(messages)-1], "")
	session.Commit()
}

// handleWithRetry 指数退避重试，直到成功、可跳过或会话结束
func handleWithRetry(ctx context.Context, m *sarama.ConsumerMessage, logic LogicFunc) {
	backoff := retryBase
	for {
		err := logic(ctx, m)
		switch {
		case err == nil:
			return
		case errors.Is(err, ErrSkipMessage):
			log.Debug("skip message", "topic", m.Topic, "offset", m.Offset, "reason", err)
			return
		}

		log.Error("process message error", "topic", m.Topic, "offset", m.Offset, "retry_in", backoff, "err", err)
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, retryMax)
	}
}

// ToCanalMessage 解析 canal 消息，DDL、其他表与空数据都视为可跳过
func ToCanalMessage(msg *sarama.ConsumerMessage, tableName string) (*CanalMessage, error) {
	var canalMsg CanalMessage
	if err := json.Unmarshal(msg.Value, &canalMsg); err != nil {
		return nil, fmt.Errorf("%w: unmarshal canal message: %v", ErrSkipMessage, err)
	}

	switch {
	case canalMsg.IsDDL:
		return nil, fmt.Errorf("%w: ddl on %q", ErrSkipMessage, canalMsg.Table)
	case canalMsg.Table != tableName:
		return nil, fmt.Errorf("%w: table %q not match", ErrSkipMessage, canalMsg.Table)
	case len(canalMsg.Data) == 0:
		return nil, fmt.Errorf("%w: data is empty", ErrSkipMessage)
	}
	return &canalMsg, nil
}
