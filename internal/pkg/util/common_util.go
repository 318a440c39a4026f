package util

import (
	"strconv"
	"time"
)

// StartOfMonth 返回 now 所在自然月的第一个瞬间（服务器本地时区）
func StartOfMonth(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// IsWithinCurrentMonth 判断 ts 是否落在 referenceNow 所在的自然月内
func IsWithinCurrentMonth(ts time.Time, referenceNow time.Time) bool {
	start := StartOfMonth(referenceNow)
	return !ts.Before(start) && ts.Before(start.AddDate(0, 1, 0))
}

// NormalizePagination 将原始分页参数收敛到合法区间，非法输入回落到默认值
func NormalizePagination(pageStr, limitStr string, defaultLimit, maxLimit int) (int, int) {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

// StrSliceToUInt64Slice 将字符串切片转换为 uint64 切片
func StrSliceToUInt64Slice(in []string) ([]uint64, error) {
	out := make([]uint64, 0, len(in))
	for _, s := range in {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
