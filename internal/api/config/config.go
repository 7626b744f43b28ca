package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件加载配置并填充到 Cfg
func LoadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	viper.SetEnvPrefix("PARLEY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file not found: %w", err)
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	Cfg = &cfg

	return nil
}

// Validate 启动前检查私信相关配置
func (c *Config) Validate() error {
	switch c.IM.DeliveryMode {
	case DeliveryModeLocal, DeliveryModeRedis:
	default:
		return fmt.Errorf("im.delivery_mode must be %q or %q, got %q", DeliveryModeLocal, DeliveryModeRedis, c.IM.DeliveryMode)
	}
	if c.IM.MaxPageSize > 0 && c.IM.DefaultPageSize > c.IM.MaxPageSize {
		return fmt.Errorf("im.default_page_size %d exceeds im.max_page_size %d", c.IM.DefaultPageSize, c.IM.MaxPageSize)
	}
	if c.Kafka.Enable && len(c.Kafka.Brokers) == 0 {
		return errors.New("kafka.enable is set but kafka.brokers is empty")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("jwt.issuer", "Parley")
	viper.SetDefault("im.delivery_mode", DeliveryModeLocal)
	viper.SetDefault("im.push_timeout_ms", 2000)
	viper.SetDefault("im.default_page_size", 20)
	viper.SetDefault("im.max_page_size", 100)
	viper.SetDefault("im.max_content_length", 1000)
	viper.SetDefault("im.send_buffer", 128)
	viper.SetDefault("im.sweep_spec", "@every 30s")
}
