package util

import (
	"math"
	"strconv"
	"strings"
)

// NormalizePage 页码从 0 开始，页大小落在 [1, maxSize]
func NormalizePage(page, pageSize, defaultSize, maxSize int) (int, int) {
	if page < 0 {
		page = 0
	}
	if pageSize <= 0 {
		pageSize = defaultSize
	}
	if maxSize > 0 && pageSize > maxSize {
		pageSize = maxSize
	}
	if pageSize > 0 && page > MaxPage(pageSize) {
		page = MaxPage(pageSize)
	}
	return page, pageSize
}

// MaxPage page*pageSize 不溢出 int64 的最大页码
func MaxPage(pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	limit := math.MaxInt64 / int64(pageSize)
	if limit > math.MaxInt {
		return math.MaxInt
	}
	return int(limit)
}

// ParseUint64 解析路径或查询参数中的正整数 ID
func ParseUint64(s string) (uint64, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// AtoiDefault 解析失败时返回默认值
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
