// Package txn 定义交易的线格式编解码
//
// 编码使用 protobuf 二进制格式(protowire 手工编码):
//   - 字段按编号升序写出
//   - 零值标量与空字节串不写出(proto3 规则),因此编码是规范的
//   - 签名字段为空时不出现在编码中,签名即对该编码签名
package txn

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// TokenBurnV1 字段编号
const (
	fieldPayer     protowire.Number = 1
	fieldPayee     protowire.Number = 2
	fieldAmount    protowire.Number = 3
	fieldNonce     protowire.Number = 4
	fieldSignature protowire.Number = 5
	fieldFee       protowire.Number = 6
	fieldMemo      protowire.Number = 7
)

var (
	// ErrMalformed 线格式数据损坏
	ErrMalformed = errors.New("malformed transaction encoding")
)

// TokenBurnV1 燃烧交易(HNT → DC)的线格式记录
type TokenBurnV1 struct {
	Payer     []byte
	Payee     []byte
	Amount    uint64
	Nonce     uint64
	Signature []byte
	Fee       uint64
	Memo      uint64
}

// Clone 深拷贝
func (t *TokenBurnV1) Clone() *TokenBurnV1 {
	c := *t
	c.Payer = cloneBytes(t.Payer)
	c.Payee = cloneBytes(t.Payee)
	c.Signature = cloneBytes(t.Signature)
	return &c
}

// Marshal 编码为规范的 protobuf 二进制
func (t *TokenBurnV1) Marshal() []byte {
	var b []byte
	b = appendBytesField(b, fieldPayer, t.Payer)
	b = appendBytesField(b, fieldPayee, t.Payee)
	b = appendVarintField(b, fieldAmount, t.Amount)
	b = appendVarintField(b, fieldNonce, t.Nonce)
	b = appendBytesField(b, fieldSignature, t.Signature)
	b = appendVarintField(b, fieldFee, t.Fee)
	b = appendVarintField(b, fieldMemo, t.Memo)
	return b
}

// SigningBytes 签名字段置空后的编码
func (t *TokenBurnV1) SigningBytes() []byte {
	c := *t
	c.Signature = nil
	return c.Marshal()
}

// Hash 交易哈希: 签名字段置空后编码的 SHA-256
func (t *TokenBurnV1) Hash() [32]byte {
	return sha256.Sum256(t.SigningBytes())
}

// UnmarshalTokenBurnV1 解码燃烧交易,拒绝未知字段与错误的线类型
func UnmarshalTokenBurnV1(b []byte) (*TokenBurnV1, error) {
	t := &TokenBurnV1{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
		}
		b = b[n:]

		switch num {
		case fieldPayer, fieldPayee, fieldSignature:
			if typ != protowire.BytesType {
				return nil, fmt.Errorf("%w: field %d has wire type %d", ErrMalformed, num, typ)
			}
			v, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return nil, fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(m))
			}
			b = b[m:]
			switch num {
			case fieldPayer:
				t.Payer = cloneBytes(v)
			case fieldPayee:
				t.Payee = cloneBytes(v)
			default:
				t.Signature = cloneBytes(v)
			}
		case fieldAmount, fieldNonce, fieldFee, fieldMemo:
			if typ != protowire.VarintType {
				return nil, fmt.Errorf("%w: field %d has wire type %d", ErrMalformed, num, typ)
			}
			v, m := protowire.ConsumeVarint(b)
			if m < 0 {
				return nil, fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(m))
			}
			b = b[m:]
			switch num {
			case fieldAmount:
				t.Amount = v
			case fieldNonce:
				t.Nonce = v
			case fieldFee:
				t.Fee = v
			default:
				t.Memo = v
			}
		default:
			return nil, fmt.Errorf("%w: unknown field %d", ErrMalformed, num)
		}
	}
	return t, nil
}

// ===== 辅助函数 =====

func appendBytesField(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendVarintField(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func cloneBytes(v []byte) []byte {
	if len(v) == 0 {
		return nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out
}

// Encode 编码燃烧交易
func Encode(t *TokenBurnV1) []byte {
	return t.Marshal()
}
