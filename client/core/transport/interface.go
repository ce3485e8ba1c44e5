// Package transport provides transport interface definitions for client operations.
package transport

import (
	"context"
	"fmt"
	"strings"
)

// AccountGetter 账户查询能力(随机数解析只依赖此能力)
type AccountGetter interface {
	// GetAccount 查询账户状态
	GetAccount(ctx context.Context, address string) (*Account, error)
}

// FeeGetter 费率表查询能力
type FeeGetter interface {
	// GetChainVars 查询链变量(含交易费率表)
	GetChainVars(ctx context.Context) (*ChainVars, error)
}

// Submitter 交易提交能力
type Submitter interface {
	// SubmitTxn 提交base64编码的交易信封,返回待处理状态
	SubmitTxn(ctx context.Context, txnB64 string) (*PendingStatus, error)
}

// Client 统一传输客户端接口 - CLI与节点通信的唯一通道
type Client interface {
	AccountGetter
	FeeGetter
	Submitter

	// BaseURL 节点API根地址,用于拼接待处理交易的状态链接
	BaseURL() string

	// Close 释放空闲连接
	Close() error
}

// ===== 数据类型 =====

// Account 账户状态
type Account struct {
	Address          string `json:"address"`
	Balance          uint64 `json:"balance"`           // bones
	DCBalance        uint64 `json:"dc_balance"`        // data credits
	Nonce            uint64 `json:"nonce"`             // 已确认随机数
	SpeculativeNonce uint64 `json:"speculative_nonce"` // 含待处理交易的随机数
}

// ChainVars 链变量中与交易费相关的部分
type ChainVars struct {
	TxnFees          bool   `json:"txn_fees"`
	TxnFeeMultiplier uint64 `json:"txn_fee_multiplier"`
	DCPayloadSize    uint64 `json:"dc_payload_size"`
}

// PendingState 待处理交易状态
type PendingState int

const (
	PendingStatePending PendingState = iota
	PendingStateFailed
	PendingStateCleared
)

// String 返回状态名称
func (s PendingState) String() string {
	switch s {
	case PendingStatePending:
		return "pending"
	case PendingStateFailed:
		return "failed"
	case PendingStateCleared:
		return "cleared"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// ParsePendingState 解析节点返回的状态名,空串视为pending
func ParsePendingState(s string) (PendingState, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pending", "received":
		return PendingStatePending, nil
	case "failed":
		return PendingStateFailed, nil
	case "cleared":
		return PendingStateCleared, nil
	default:
		return 0, fmt.Errorf("unknown pending state %q", s)
	}
}

// PendingStatus 节点接受提交后返回的状态
// 只由提交生成,不可变,不持久化;未提交用nil表示
type PendingStatus struct {
	Hash  string
	State PendingState
}
