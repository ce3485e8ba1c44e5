package txn

import (
	"encoding/base64"
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Envelope oneof 字段编号
const (
	fieldEnvelopeTokenBurn protowire.Number = 17
)

// Kind 交易种类
type Kind string

const (
	KindTokenBurnV1 Kind = "token_burn_v1"
)

var (
	// ErrEmptyEnvelope 信封不含任何交易
	ErrEmptyEnvelope = errors.New("envelope holds no transaction")
)

// Variant 信封内的交易变体(封闭集合,仅本包可实现)
type Variant interface {
	isEnvelopeVariant()

	// Kind 变体对应的交易种类
	Kind() Kind

	number() protowire.Number
	marshal() []byte
}

// EnvelopeTokenBurn 燃烧交易变体
type EnvelopeTokenBurn struct {
	TokenBurn *TokenBurnV1
}

func (*EnvelopeTokenBurn) isEnvelopeVariant() {}

// Kind 返回 KindTokenBurnV1
func (*EnvelopeTokenBurn) Kind() Kind { return KindTokenBurnV1 }

func (*EnvelopeTokenBurn) number() protowire.Number { return fieldEnvelopeTokenBurn }

func (v *EnvelopeTokenBurn) marshal() []byte {
	if v.TokenBurn == nil {
		return nil
	}
	return v.TokenBurn.Marshal()
}

var _ Variant = (*EnvelopeTokenBurn)(nil)

// Envelope 提交容器,恰好持有一个已签名交易
type Envelope struct {
	Txn Variant
}

// GetTokenBurn 返回燃烧交易,其他变体返回nil
func (e *Envelope) GetTokenBurn() *TokenBurnV1 {
	if e == nil {
		return nil
	}
	if v, ok := e.Txn.(*EnvelopeTokenBurn); ok {
		return v.TokenBurn
	}
	return nil
}

// Marshal 编码信封
func (e *Envelope) Marshal() []byte {
	if e == nil || e.Txn == nil {
		return nil
	}
	var b []byte
	b = protowire.AppendTag(b, e.Txn.number(), protowire.BytesType)
	return protowire.AppendBytes(b, e.Txn.marshal())
}

// Base64 标准base64编码的信封,用于提交与审计展示
func (e *Envelope) Base64() string {
	return base64.StdEncoding.EncodeToString(e.Marshal())
}

// UnmarshalEnvelope 解码信封
func UnmarshalEnvelope(b []byte) (*Envelope, error) {
	env := &Envelope{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
		}
		b = b[n:]

		if typ != protowire.BytesType {
			return nil, fmt.Errorf("%w: envelope field %d has wire type %d", ErrMalformed, num, typ)
		}
		payload, m := protowire.ConsumeBytes(b)
		if m < 0 {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(m))
		}
		b = b[m:]

		switch num {
		case fieldEnvelopeTokenBurn:
			burn, err := UnmarshalTokenBurnV1(payload)
			if err != nil {
				return nil, err
			}
			env.Txn = &EnvelopeTokenBurn{TokenBurn: burn}
		default:
			return nil, fmt.Errorf("%w: unknown envelope variant %d", ErrMalformed, num)
		}
	}

	if env.Txn == nil {
		return nil, ErrEmptyEnvelope
	}
	return env, nil
}

// EnvelopeFromBase64 解码base64信封
func EnvelopeFromBase64(s string) (*Envelope, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return UnmarshalEnvelope(raw)
}

// EncodeEnvelope 编码信封为规范字节
func EncodeEnvelope(e *Envelope) []byte {
	return e.Marshal()
}
