package kafka

import (
	"Parley/internal/api/config"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理所有 Kafka 消费者
type ConsumerManager struct {
	usersConsumer sarama.ConsumerGroup
	usersHandler  sarama.ConsumerGroupHandler

	userDetailConsumer sarama.ConsumerGroup
	userDetailHandler  sarama.ConsumerGroupHandler
}

// NewConsumerManager 构造函数
func NewConsumerManager(cfg *config.Config, cache CacheInvalidator) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	usersConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaUserConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}

	userDetailConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaUserDetailConsumer.GroupID, saramaCfg)
	if err != nil {
		_ = usersConsumer.Close()
		return nil, err
	}

	return &ConsumerManager{
		usersConsumer:      usersConsumer,
		usersHandler:       NewUserHandler(cache),
		userDetailConsumer: userDetailConsumer,
		userDetailHandler:  NewUserDetailHandler(cache),
	}, nil
}

// Start 启动所有消费者，阻塞直到 ctx 结束
func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	go consumeLoop(ctx, "User", m.usersConsumer, cfg.KafkaUserConsumer.Topic, m.usersHandler)
	go consumeLoop(ctx, "User Detail", m.userDetailConsumer, cfg.KafkaUserDetailConsumer.Topic, m.userDetailHandler)

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.usersConsumer.Close(); err != nil {
		log.Error("Failed to close user consumer", "err", err)
	}
	if err := m.userDetailConsumer.Close(); err != nil {
		log.Error("Failed to close user detail consumer", "err", err)
	}

	return nil
}

func consumeLoop(ctx context.Context, name string, group sarama.ConsumerGroup, topic string, handler sarama.ConsumerGroupHandler) {
	log.Info(name+" consumer started", "topic", topic)
	for {
		if err := group.Consume(ctx, []string{topic}, handler); err != nil {
			log.Error("Error from consumer", "consumer", name, "err", err)
		}
		if ctx.Err() != nil {
			return
		}
	}
}
