package builder

import (
	"encoding/base64"
	"encoding/binary"
	"strings"

	"github.com/weisyn/burnwallet/client/core/errs"
)

// MemoSize 备注的固定字节宽度
const MemoSize = 8

// Memo 交易备注
// 用户以base64提供最多8字节,右侧补零后按小端序读为uint64
type Memo uint64

// ParseMemo 解析base64备注,空串为0
func ParseMemo(s string) (Memo, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	decoded, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return 0, errs.Validation("parse memo", errs.ErrMemoEncoding, "%v", err)
	}
	if len(decoded) > MemoSize {
		return 0, errs.Validation("parse memo", errs.ErrMemoEncoding, "%d bytes exceeds %d", len(decoded), MemoSize)
	}

	var buf [MemoSize]byte
	copy(buf[:], decoded)
	return Memo(binary.LittleEndian.Uint64(buf[:])), nil
}

// String 以base64输出8字节小端序
func (m Memo) String() string {
	var buf [MemoSize]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(m))
	return base64.StdEncoding.EncodeToString(buf[:])
}
