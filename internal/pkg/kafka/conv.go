package kafka

import (
	"fmt"
	"strconv"
	"time"
)

// CDC 消息的变更类型
const (
	INSERT = "INSERT"
	UPDATE = "UPDATE"
	DELETE = "DELETE"
)

// StrToString CDC 行数据统一是字符串，nil 转为空串
func StrToString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func StrToUint64(v interface{}) uint64 {
	n, err := strconv.ParseUint(StrToString(v), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func StrToInt(v interface{}) int {
	n, err := strconv.Atoi(StrToString(v))
	if err != nil {
		return 0
	}
	return n
}

// StrToDateTime 解析行数据中的时间列，解析失败返回零值
func StrToDateTime(v interface{}) time.Time {
	s := StrToString(v)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}
