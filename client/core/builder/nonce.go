package builder

import (
	"context"
	"fmt"
	"math"

	"github.com/weisyn/burnwallet/client/core/errs"
	"github.com/weisyn/burnwallet/client/core/keypair"
	"github.com/weisyn/burnwallet/client/core/transport"
)

// ResolveNonce 解析交易随机数
//
// 显式指定时原样返回且不访问网络;否则查询付款账户,
// 返回 speculative_nonce + 1
func ResolveNonce(ctx context.Context, accounts transport.AccountGetter, payer keypair.PublicKey, override *uint64) (uint64, error) {
	const op = "resolve nonce"

	if override != nil {
		return *override, nil
	}
	if accounts == nil {
		return 0, errs.Lookup(op, errs.ErrAccountLookup, fmt.Errorf("no account client"))
	}

	account, err := accounts.GetAccount(ctx, payer.String())
	if err != nil {
		return 0, errs.Lookup(op, errs.ErrAccountLookup, err)
	}
	if account.SpeculativeNonce == math.MaxUint64 {
		return 0, errs.Lookup(op, errs.ErrAccountLookup, fmt.Errorf("speculative nonce exhausted"))
	}

	return account.SpeculativeNonce + 1, nil
}
