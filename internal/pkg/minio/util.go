package minio

import (
	"fmt"
	"strings"
)

// GetPublicURL 获取文件的公共访问URL
// 已是完整地址或未配置对外地址时原样返回
func GetPublicURL(objectName string) string {
	if objectName == "" {
		return ""
	}
	if strings.HasPrefix(objectName, "http://") || strings.HasPrefix(objectName, "https://") {
		return objectName
	}
	if publicEndpoint == "" {
		return objectName
	}

	protocol := "http"
	if publicUseSSL {
		protocol = "https"
	}

	return fmt.Sprintf("%s://%s/%s/%s", protocol, publicEndpoint, MainBucket, strings.TrimPrefix(objectName, "/"))
}
