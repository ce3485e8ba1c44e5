package builder

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weisyn/burnwallet/client/core/errs"
	"github.com/weisyn/burnwallet/client/core/transport"
)

func TestBurnBuilder_Build(t *testing.T) {
	payer := testKeypair(t, 1)
	payee := testKeypair(t, 2).PublicKey()
	accounts := &fakeAccounts{account: &transport.Account{SpeculativeNonce: 9}}
	fees := &fakeFees{vars: &transport.ChainVars{TxnFees: true, TxnFeeMultiplier: 5000, DCPayloadSize: 24}}

	b := NewBurnBuilder(accounts, fees, Policy{})
	unsigned, err := b.Build(context.Background(), BurnParams{
		Payer:  payer.PublicKey(),
		Payee:  payee.String(),
		Amount: NewAmountFromBones(1),
		Memo:   "AQ==",
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(10), unsigned.Nonce())
	assert.Equal(t, Memo(1), unsigned.Memo())
	assert.True(t, unsigned.Payee().Equal(payee))

	// 交易费基于最终随机数计算
	want, err := CalculateFee(NewDraftBurn(Policy{}).
		SetPayer(payer.PublicKey()).
		SetPayee(payee).
		SetAmount(NewAmountFromBones(1)).
		SetMemo(1).
		SetNonce(10).
		Record(), FeeSchedule{TxnFees: true, Multiplier: 5000, PayloadSize: 24})
	require.NoError(t, err)
	assert.Equal(t, want, unsigned.Fee())
}

func TestBurnBuilder_Overrides(t *testing.T) {
	payer := testKeypair(t, 1)
	accounts := &fakeAccounts{err: errors.New("offline")}
	fees := &fakeFees{err: errors.New("offline")}

	unsigned, err := NewBurnBuilder(accounts, fees, Policy{}).Build(context.Background(), BurnParams{
		Payer:  payer.PublicKey(),
		Payee:  testKeypair(t, 2).PublicKey().String(),
		Amount: NewAmountFromBones(100_000_000),
		Nonce:  uint64Ptr(5),
		Fee:    uint64Ptr(100),
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(5), unsigned.Nonce())
	assert.Equal(t, uint64(100), unsigned.Fee())
	assert.Zero(t, accounts.calls)
	assert.Zero(t, fees.calls)
}

func TestBurnBuilder_Errors(t *testing.T) {
	payer := testKeypair(t, 1).PublicKey()
	payee := testKeypair(t, 2).PublicKey().String()

	tests := []struct {
		name     string
		policy   Policy
		params   BurnParams
		accounts *fakeAccounts
		sentinel error
		kind     errs.Kind
	}{
		{
			name:     "bad payee",
			params:   BurnParams{Payer: payer, Payee: "not-an-address"},
			sentinel: errs.ErrInvalidPublicKey,
			kind:     errs.KindValidation,
		},
		{
			name:     "bad memo",
			params:   BurnParams{Payer: payer, Payee: payee, Memo: "AQIDBAUGBwgJ"},
			sentinel: errs.ErrMemoEncoding,
			kind:     errs.KindValidation,
		},
		{
			name:     "zero amount policy",
			policy:   Policy{RejectZeroAmount: true},
			params:   BurnParams{Payer: payer, Payee: payee},
			sentinel: errs.ErrZeroAmount,
			kind:     errs.KindValidation,
		},
		{
			name:     "account lookup",
			params:   BurnParams{Payer: payer, Payee: payee, Fee: uint64Ptr(0)},
			accounts: &fakeAccounts{err: errors.New("404")},
			sentinel: errs.ErrAccountLookup,
			kind:     errs.KindLookup,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := tt.accounts
			if accounts == nil {
				accounts = &fakeAccounts{err: errors.New("unexpected lookup")}
			}
			_, err := NewBurnBuilder(accounts, &fakeFees{}, tt.policy).Build(context.Background(), tt.params)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.Equal(t, tt.kind, errs.KindOf(err))
		})
	}
}
