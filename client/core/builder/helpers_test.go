package builder

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/weisyn/burnwallet/client/core/keypair"
	"github.com/weisyn/burnwallet/client/core/transport"
)

type fakeAccounts struct {
	account *transport.Account
	err     error
	calls   int
}

func (f *fakeAccounts) GetAccount(ctx context.Context, address string) (*transport.Account, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	a := *f.account
	a.Address = address
	return &a, nil
}

type fakeFees struct {
	vars  *transport.ChainVars
	err   error
	calls int
}

func (f *fakeFees) GetChainVars(ctx context.Context) (*transport.ChainVars, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.vars, nil
}

func testKeypair(t *testing.T, fill byte) *keypair.Keypair {
	t.Helper()
	kp, err := keypair.NewKeypairFromSeed(keypair.NetworkMainnet, bytes.Repeat([]byte{fill}, 32))
	require.NoError(t, err)
	return kp
}

func uint64Ptr(v uint64) *uint64 {
	return &v
}
