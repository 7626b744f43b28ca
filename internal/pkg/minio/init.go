package minio

import (
	"Parley/internal/api/config"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var (
	// Client 全局 MinIO 客户端实例
	Client *minio.Client
	// MainBucket 头像所在存储桶
	MainBucket string

	publicEndpoint string
	publicUseSSL   bool
)

// Init 初始化 MinIO 客户端，只做连通性检查
func Init(cfg config.MinIOConfig) error {
	var endpoint string
	var useSSL bool
	if cfg.InternalEndpoint != "" {
		endpoint = cfg.InternalEndpoint
		useSSL = cfg.InternalUseSSL
	} else {
		endpoint = cfg.ExternalEndpoint
		useSSL = cfg.UseSSL
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MainBucket)
	if err != nil {
		return fmt.Errorf("failed to connect to minio server: %w", err)
	}
	if !exists {
		log.Warn("MinIO main bucket not found, avatar urls may be broken", "bucket", cfg.MainBucket)
	}

	Client = client
	SetPublicEndpoint(cfg.ExternalEndpoint, cfg.UseSSL, cfg.MainBucket)
	return nil
}

// SetPublicEndpoint 设置对外访问地址
func SetPublicEndpoint(endpoint string, useSSL bool, bucket string) {
	publicEndpoint = endpoint
	publicUseSSL = useSSL
	MainBucket = bucket
}
