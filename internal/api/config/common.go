package config

import "time"

// Config 配置主体
type Config struct {
	Server                  ServerConfig            `mapstructure:"server"`
	DB                      DBConfig                `mapstructure:"database"`
	Redis                   RedisConfig             `mapstructure:"redis"`
	Mongo                   MongoConfig             `mapstructure:"mongo"`
	MinIO                   MinIOConfig             `mapstructure:"minio"`
	Kafka                   KafkaConfig             `mapstructure:"kafka"`
	KafkaUserConsumer       KafkaUserConsumer       `mapstructure:"kafka_user_consumer"`
	KafkaUserDetailConsumer KafkaUserDetailConsumer `mapstructure:"kafka_user_detail_consumer"`
	Logstash                LogstashConfig          `mapstructure:"logstash"`
	JWT                     JWTConfig               `mapstructure:"jwt"`
	IM                      IMConfig                `mapstructure:"im"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

// MinIOConfig MinIO配置，仅用于头像等公共资源的访问地址
type MinIOConfig struct {
	InternalEndpoint string `mapstructure:"internal_endpoint"`
	ExternalEndpoint string `mapstructure:"external_endpoint"`
	AccessKey        string `mapstructure:"access_key"`
	SecretKey        string `mapstructure:"secret_key"`
	MainBucket       string `mapstructure:"main_bucket"`
	InternalUseSSL   bool   `mapstructure:"internal_use_ssl"`
	UseSSL           bool   `mapstructure:"use_ssl"`
}

type KafkaConfig struct {
	Enable   bool           `mapstructure:"enable"`
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

type KafkaUserConsumer struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}

type KafkaUserDetailConsumer struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}

// LogstashConfig 远程日志
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

// IMConfig 私信相关配置
type IMConfig struct {
	DeliveryMode     string `mapstructure:"delivery_mode"` // local | redis
	PushTimeoutMS    int    `mapstructure:"push_timeout_ms"`
	DefaultPageSize  int    `mapstructure:"default_page_size"`
	MaxPageSize      int    `mapstructure:"max_page_size"`
	MaxContentLength int    `mapstructure:"max_content_length"`
	SendBuffer       int    `mapstructure:"send_buffer"`
	SweepSpec        string `mapstructure:"sweep_spec"`
}

const (
	DeliveryModeLocal = "local"
	DeliveryModeRedis = "redis"
)

// PushTimeout 推送超时，未配置时为 2s
func (c IMConfig) PushTimeout() time.Duration {
	if c.PushTimeoutMS <= 0 {
		return 2 * time.Second
	}
	return time.Duration(c.PushTimeoutMS) * time.Millisecond
}
