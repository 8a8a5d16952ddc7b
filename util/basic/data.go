package basic

import (
	"strconv"
	"strings"
)

// ParseSizeBytes 严格解析字节数文本. 空串、非数字或负数一律视为非法,
// 上层据此做防御性跳过.
func ParseSizeBytes(s string) (uint64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// TrimAllSpace 去除字符串中的全部空白字符.
func TrimAllSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
