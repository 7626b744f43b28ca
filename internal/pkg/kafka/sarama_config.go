package kafka

import (
	"Parley/internal/api/config"
	"time"

	"github.com/IBM/sarama"
)

// newSaramaConfig 消费者公共配置，偏移量手动提交
func newSaramaConfig(kafkaCfg config.KafkaConfig) *sarama.Config {
	c := sarama.NewConfig()

	if kafkaCfg.Sasl.Enable {
		c.Net.SASL.Enable = true
		c.Net.SASL.Mechanism = sarama.SASLTypePlaintext
		c.Net.SASL.User = kafkaCfg.Sasl.Username
		c.Net.SASL.Password = kafkaCfg.Sasl.Password
	}

	c.ClientID = "parley-im"
	c.Consumer.Return.Errors = true
	c.Consumer.Offsets.Initial = sarama.OffsetNewest

	if kafkaCfg.Consumer.SessionTimeout > 0 {
		c.Consumer.Group.Session.Timeout = time.Duration(kafkaCfg.Consumer.SessionTimeout) * time.Second
	}
	if kafkaCfg.Consumer.HeartbeatInterval > 0 {
		c.Consumer.Group.Heartbeat.Interval = time.Duration(kafkaCfg.Consumer.HeartbeatInterval) * time.Second
	}
	if kafkaCfg.Consumer.RebalanceTimeout > 0 {
		c.Consumer.Group.Rebalance.Timeout = time.Duration(kafkaCfg.Consumer.RebalanceTimeout) * time.Second
	}
	c.Consumer.Offsets.AutoCommit.Enable = false
	if kafkaCfg.Consumer.MaxProcessingTime > 0 {
		c.Consumer.MaxProcessingTime = time.Duration(kafkaCfg.Consumer.MaxProcessingTime) * time.Second
	}

	return c
}
