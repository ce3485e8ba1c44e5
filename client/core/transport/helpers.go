package transport

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/weisyn/burnwallet/client/pkg/jsonx"
)

// dataEnvelope 节点API统一响应外层 {"data": ...}
type dataEnvelope struct {
	Data jsonx.RawMessage `json:"data"`
}

// flexUint64 兼容数字与字符串两种表示的uint64
type flexUint64 uint64

func (f *flexUint64) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := jsonx.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := parseUint64String(s)
		if err != nil {
			return err
		}
		*f = flexUint64(v)
		return nil
	}
	v, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return err
	}
	*f = flexUint64(v)
	return nil
}

// parseUint64String 解析十进制或0x前缀的十六进制字符串
func parseUint64String(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return strconv.ParseUint(s[2:], 16, 64)
	}
	return strconv.ParseUint(s, 10, 64)
}
