package builder

import (
	"context"
	"errors"

	"github.com/weisyn/burnwallet/client/core/errs"
	"github.com/weisyn/burnwallet/client/core/keypair"
	"github.com/weisyn/burnwallet/client/core/transport"
	"github.com/weisyn/burnwallet/internal/log"
)

// ErrBadSignature 签名校验失败
var ErrBadSignature = errors.New("signature does not verify")

// BurnParams 燃烧交易的用户输入
type BurnParams struct {
	Payer  keypair.PublicKey
	Payee  string  // Base58Check地址
	Amount Amount  // bones
	Memo   string  // base64,最多8字节
	Nonce  *uint64 // 非nil时跳过账户查询
	Fee    *uint64 // 非nil时跳过费率表获取
}

// BurnBuilder 燃烧交易构建器
type BurnBuilder struct {
	accounts transport.AccountGetter
	fees     transport.FeeGetter
	policy   Policy
	logger   log.Logger
}

// NewBurnBuilder 创建燃烧交易构建器
func NewBurnBuilder(accounts transport.AccountGetter, fees transport.FeeGetter, policy Policy) *BurnBuilder {
	return &BurnBuilder{
		accounts: accounts,
		fees:     fees,
		policy:   policy,
		logger:   log.With("module", "builder"),
	}
}

// CreateDraft 创建交易草稿
func (b *BurnBuilder) CreateDraft() *DraftBurn {
	return NewDraftBurn(b.policy)
}

// Build 组装并密封燃烧交易
//
// 步骤: 解析收款方和备注 → 解析随机数 → 在最终随机数就位后计算交易费 → 密封
func (b *BurnBuilder) Build(ctx context.Context, params BurnParams) (*UnsignedBurn, error) {
	payee, err := keypair.ParsePublicKey(params.Payee)
	if err != nil {
		return nil, errs.E(errs.KindValidation, "parse payee", err)
	}

	memo, err := ParseMemo(params.Memo)
	if err != nil {
		return nil, err
	}

	draft := b.CreateDraft().
		SetPayer(params.Payer).
		SetPayee(payee).
		SetAmount(params.Amount).
		SetMemo(memo)

	// 零金额策略先于任何网络访问检查
	if err := draft.validate(); err != nil {
		return nil, err
	}

	nonce, err := ResolveNonce(ctx, b.accounts, params.Payer, params.Nonce)
	if err != nil {
		return nil, err
	}
	draft.SetNonce(nonce)
	b.logger.Debugf("nonce resolved: %d (override=%t)", nonce, params.Nonce != nil)

	fee, err := ResolveFee(ctx, b.fees, draft.Record(), params.Fee)
	if err != nil {
		return nil, err
	}
	draft.SetFee(fee)
	b.logger.Debugf("fee resolved: %d DC (override=%t)", fee, params.Fee != nil)

	return draft.Seal()
}
