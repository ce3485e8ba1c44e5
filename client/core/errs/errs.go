// Package errs 定义燃烧交易流水线的错误分类
package errs

import (
	"errors"
	"fmt"
)

// Kind 错误类别
type Kind string

const (
	KindValidation   Kind = "validation"   // 输入校验失败(收款地址/备注/金额)
	KindLookup       Kind = "lookup"       // 账户或费率表查询失败
	KindSigning      Kind = "signing"      // 密钥故障
	KindSubmission   Kind = "submission"   // 节点拒绝或不可达
	KindPresentation Kind = "presentation" // 展示阶段重新解码失败(内部不一致)
)

var (
	// ErrInvalidPublicKey 无效的公钥/地址
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrMemoEncoding 备注无法编码为64位整数
	ErrMemoEncoding = errors.New("invalid memo encoding")

	// ErrZeroAmount 零金额被策略禁止
	ErrZeroAmount = errors.New("zero amount not permitted")

	// ErrAccountLookup 账户查询失败
	ErrAccountLookup = errors.New("account lookup failed")

	// ErrFeeSchedule 费率表获取失败或无效
	ErrFeeSchedule = errors.New("fee schedule unavailable")

	// ErrSigning 签名失败
	ErrSigning = errors.New("signing failed")

	// ErrSubmission 提交失败
	ErrSubmission = errors.New("submission failed")
)

// Error 带类别和操作名的错误
type Error struct {
	Kind Kind
	Op   string // 出错的流水线步骤,如 "resolve nonce"
	Err  error
}

// E 构造分类错误
func E(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf 返回错误链中第一个分类错误的类别,不存在时返回空字符串
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Validation 包装校验错误
func Validation(op string, sentinel error, format string, args ...interface{}) *Error {
	return E(KindValidation, op, wrapf(sentinel, format, args...))
}

// Lookup 包装查询错误,哨兵与原因都保留在错误链中
func Lookup(op string, sentinel error, cause error) *Error {
	return E(KindLookup, op, fmt.Errorf("%w: %w", sentinel, cause))
}

// Signing 包装签名错误
func Signing(op string, format string, args ...interface{}) *Error {
	return E(KindSigning, op, wrapf(ErrSigning, format, args...))
}

// Submission 包装提交错误,原因(取消、HTTP状态)可用errors.Is/As取回
func Submission(op string, cause error) *Error {
	return E(KindSubmission, op, fmt.Errorf("%w: %w", ErrSubmission, cause))
}

func wrapf(sentinel error, format string, args ...interface{}) error {
	if format == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
