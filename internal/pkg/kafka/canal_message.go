package kafka

import (
	"strconv"

	"github.com/goccy/go-json"
)

// Canal 变更类型
const (
	INSERT = "INSERT"
	UPDATE = "UPDATE"
	DELETE = "DELETE"
)

// CanalMessage 定义了 Canal 推送到 Kafka 的 JSON 数据结构
type CanalMessage struct {
	ID       int64    `json:"id"`
	Database string   `json:"database"`
	Table    string   `json:"table"`
	PKNames  []string `json:"pkNames"`
	IsDDL    bool     `json:"isDdl"`
	Type     string   `json:"type"`
	ES       int64    `json:"es"`
	TS       int64    `json:"ts"`
	SQL      string   `json:"sql"`

	// Data 存储变更后的数据
	Data []map[string]interface{} `json:"data"`

	// Old 存储变更前的数据
	Old []map[string]interface{} `json:"old"`

	// 字段类型元数据
	SqlType   map[string]int    `json:"sqlType"`   // JDBC 类型 ID
	MysqlType map[string]string `json:"mysqlType"` // MySQL 类型描述
}

// ColumnChanged 某一行的指定列是否发生变化，INSERT/DELETE 视为全部变化
func (m *CanalMessage) ColumnChanged(row int, columns ...string) bool {
	if m.Type != UPDATE {
		return true
	}
	if row >= len(m.Old) {
		return true
	}
	for _, col := range columns {
		if _, ok := m.Old[row][col]; ok {
			return true
		}
	}
	return false
}

// Uint64Column 收集所有行中指定列的值
func (m *CanalMessage) Uint64Column(column string) []uint64 {
	ids := make([]uint64, 0, len(m.Data))
	for _, row := range m.Data {
		if id := StrToUint64(row[column]); id != 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

// StrToUint64 Canal 以字符串形式传递所有列值
func StrToUint64(v interface{}) uint64 {
	switch val := v.(type) {
	case string:
		n, err := strconv.ParseUint(val, 10, 64)
		if err != nil {
			return 0
		}
		return n
	case float64:
		if val < 0 {
			return 0
		}
		return uint64(val)
	case json.Number:
		n, err := strconv.ParseUint(val.String(), 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// StrToString 空值返回空串
func StrToString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
