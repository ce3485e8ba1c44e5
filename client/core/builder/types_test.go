package builder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weisyn/burnwallet/client/core/errs"
	"github.com/weisyn/burnwallet/client/core/keypair"
	"github.com/weisyn/burnwallet/client/core/txn"
)

func sealedBurn(t *testing.T, payer *keypair.Keypair) *UnsignedBurn {
	t.Helper()
	unsigned, err := NewDraftBurn(Policy{}).
		SetPayer(payer.PublicKey()).
		SetPayee(testKeypair(t, 2).PublicKey()).
		SetAmount(NewAmountFromBones(150_000_000)).
		SetMemo(Memo(0x0807060504030201)).
		SetNonce(5).
		SetFee(100).
		Seal()
	require.NoError(t, err)
	return unsigned
}

type failingSigner struct {
	pub keypair.PublicKey
	sig []byte
	err error
}

func (f failingSigner) PublicKey() keypair.PublicKey { return f.pub }
func (f failingSigner) Sign([]byte) ([]byte, error)  { return f.sig, f.err }

func TestDraftBurn_Seal(t *testing.T) {
	payer := testKeypair(t, 1)
	unsigned := sealedBurn(t, payer)

	assert.True(t, unsigned.Payer().Equal(payer.PublicKey()))
	assert.Equal(t, uint64(150_000_000), unsigned.Amount().Bones())
	assert.Equal(t, uint64(5), unsigned.Nonce())
	assert.Equal(t, uint64(100), unsigned.Fee())
	assert.Equal(t, Memo(0x0807060504030201), unsigned.Memo())
}

func TestDraftBurn_SealValidation(t *testing.T) {
	payer := testKeypair(t, 1).PublicKey()
	payee := testKeypair(t, 2).PublicKey()

	tests := []struct {
		name     string
		draft    *DraftBurn
		sentinel error
	}{
		{"missing payer", NewDraftBurn(Policy{}).SetPayee(payee), errs.ErrInvalidPublicKey},
		{"missing payee", NewDraftBurn(Policy{}).SetPayer(payer), errs.ErrInvalidPublicKey},
		{"zero amount rejected", NewDraftBurn(Policy{RejectZeroAmount: true}).SetPayer(payer).SetPayee(payee), errs.ErrZeroAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.draft.Seal()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.Equal(t, errs.KindValidation, errs.KindOf(err))
		})
	}

	_, err := NewDraftBurn(Policy{}).SetPayer(payer).SetPayee(payee).Seal()
	assert.NoError(t, err, "zero amount is permitted by default")
}

func TestUnsignedBurn_Sign(t *testing.T) {
	payer := testKeypair(t, 1)
	unsigned := sealedBurn(t, payer)

	signed, err := unsigned.Sign(payer)
	require.NoError(t, err)
	require.NoError(t, VerifyBurn(signed))
	assert.Len(t, signed.Signature(), 64)

	// 确定性签名
	again, err := sealedBurn(t, payer).Sign(payer)
	require.NoError(t, err)
	assert.Equal(t, signed.Signature(), again.Signature())

	// 签名覆盖除签名外的全部字段
	assert.Equal(t, unsigned.SigningBytes(), signed.Record().SigningBytes())
}

func TestUnsignedBurn_SignOnce(t *testing.T) {
	payer := testKeypair(t, 1)
	unsigned := sealedBurn(t, payer)

	_, err := unsigned.Sign(payer)
	require.NoError(t, err)

	_, err = unsigned.Sign(payer)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrSigning)
	assert.Equal(t, errs.KindSigning, errs.KindOf(err))
}

func TestUnsignedBurn_SignFaults(t *testing.T) {
	payer := testKeypair(t, 1)

	wiped := testKeypair(t, 1)
	wiped.Wipe()

	tests := []struct {
		name   string
		signer interface {
			PublicKey() keypair.PublicKey
			Sign([]byte) ([]byte, error)
		}
	}{
		{"wrong key", testKeypair(t, 9)},
		{"wiped key", wiped},
		{"signer error", failingSigner{pub: payer.PublicKey(), err: errors.New("device unplugged")}},
		{"short signature", failingSigner{pub: payer.PublicKey(), sig: make([]byte, 10)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sealedBurn(t, payer).Sign(tt.signer)
			require.Error(t, err)
			assert.Equal(t, errs.KindSigning, errs.KindOf(err))
		})
	}

	_, err := sealedBurn(t, payer).Sign(nil)
	assert.Equal(t, errs.KindSigning, errs.KindOf(err))
}

func TestUnsignedBurn_FailedSignIsRetryable(t *testing.T) {
	payer := testKeypair(t, 1)
	unsigned := sealedBurn(t, payer)

	_, err := unsigned.Sign(testKeypair(t, 9))
	require.Error(t, err)

	_, err = unsigned.Sign(payer)
	assert.NoError(t, err)
}

func TestVerifyTokenBurn_SingleBitMutation(t *testing.T) {
	payer := testKeypair(t, 1)
	signed, err := sealedBurn(t, payer).Sign(payer)
	require.NoError(t, err)

	mutations := map[string]func(r *txn.TokenBurnV1){
		"payer":     func(r *txn.TokenBurnV1) { r.Payer[5] ^= 0x01 },
		"payer tag": func(r *txn.TokenBurnV1) { r.Payer[0] ^= 0x10 },
		"payee":     func(r *txn.TokenBurnV1) { r.Payee[32] ^= 0x80 },
		"amount":    func(r *txn.TokenBurnV1) { r.Amount ^= 1 },
		"nonce":     func(r *txn.TokenBurnV1) { r.Nonce ^= 1 << 3 },
		"fee":       func(r *txn.TokenBurnV1) { r.Fee ^= 1 },
		"memo":      func(r *txn.TokenBurnV1) { r.Memo ^= 1 << 63 },
		"signature": func(r *txn.TokenBurnV1) { r.Signature[0] ^= 0x01 },
		"sig tail":  func(r *txn.TokenBurnV1) { r.Signature[63] ^= 0x01 },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			record := signed.Record()
			require.NoError(t, VerifyTokenBurn(record))
			mutate(record)
			assert.Error(t, VerifyTokenBurn(record))
		})
	}
}

func TestSignedBurn_ReadOnly(t *testing.T) {
	payer := testKeypair(t, 1)
	signed, err := sealedBurn(t, payer).Sign(payer)
	require.NoError(t, err)

	sig := signed.Signature()
	sig[0] ^= 0xFF
	record := signed.Record()
	record.Amount = 1

	assert.NoError(t, VerifyBurn(signed))
	assert.Equal(t, uint64(150_000_000), signed.Amount().Bones())
}

func TestSignedBurn_Envelope(t *testing.T) {
	payer := testKeypair(t, 1)
	signed, err := sealedBurn(t, payer).Sign(payer)
	require.NoError(t, err)

	env := signed.Envelope()
	assert.Equal(t, txn.KindTokenBurnV1, env.Txn.Kind())
	assert.Equal(t, signed.Record(), env.GetTokenBurn())

	decoded, err := txn.UnmarshalEnvelope(txn.EncodeEnvelope(env))
	require.NoError(t, err)
	assert.NoError(t, VerifyTokenBurn(decoded.GetTokenBurn()))
	assert.Equal(t, txn.EncodeEnvelope(env), txn.EncodeEnvelope(signed.Envelope()))
}
