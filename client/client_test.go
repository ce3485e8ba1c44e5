package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weisyn/burnwallet/client/core/builder"
	"github.com/weisyn/burnwallet/client/core/burn"
	"github.com/weisyn/burnwallet/client/core/keypair"
	"github.com/weisyn/burnwallet/client/core/txn"
	"github.com/weisyn/burnwallet/client/pkg/jsonx"
)

func testKeypair(t *testing.T, fill byte) *keypair.Keypair {
	t.Helper()
	kp, err := keypair.NewKeypairFromSeed(keypair.NetworkTestnet, bytes.Repeat([]byte{fill}, 32))
	require.NoError(t, err)
	return kp
}

func TestClient_BurnCommit(t *testing.T) {
	payer := testKeypair(t, 0x01)
	payee := testKeypair(t, 0x02)

	var submitted string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/v1/accounts/"):
			assert.Equal(t, "/v1/accounts/"+payer.PublicKey().String(), r.URL.Path)
			_, _ = io.WriteString(w, `{"data":{"speculative_nonce":"4"}}`)
		case r.Method == http.MethodGet && r.URL.Path == "/v1/vars":
			_, _ = io.WriteString(w, `{"data":{"txn_fees":true,"txn_fee_multiplier":5000,"dc_payload_size":24}}`)
		case r.Method == http.MethodPost && r.URL.Path == "/v1/pending_transactions":
			var body map[string]string
			require.NoError(t, jsonx.NewDecoder(r.Body).Decode(&body))
			submitted = body["txn"]
			_, _ = io.WriteString(w, `{"data":{"hash":"0xAB12"}}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c, err := NewWithTimeout(keypair.NetworkTestnet, srv.URL+"/v1", 0)
	require.NoError(t, err)
	defer c.Close()

	result, err := c.Burn(context.Background(), burn.Request{
		Signer: payer,
		Payee:  payee.PublicKey().String(),
		Amount: builder.NewAmountFromBones(100_000_000),
		Commit: true,
	})
	require.NoError(t, err)

	assert.True(t, result.Committed())
	assert.Equal(t, uint64(5), result.Signed.Nonce())
	assert.NotZero(t, result.Signed.Fee())
	assert.Equal(t, srv.URL+"/v1/pending_transactions/0xAB12", result.PendingURL)
	assert.Equal(t, c.PendingURL("0xAB12"), result.PendingURL)
	assert.Equal(t, result.Envelope.Base64(), submitted)

	env, err := txn.EnvelopeFromBase64(submitted)
	require.NoError(t, err)
	require.NoError(t, builder.VerifyTokenBurn(env.GetTokenBurn()))
}

func TestClient_BurnPreviewZeroAmountPolicy(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c, err := NewWithTimeout(keypair.NetworkTestnet, srv.URL, 0)
	require.NoError(t, err)
	c.WithPolicy(builder.Policy{RejectZeroAmount: true})

	_, err = c.Burn(context.Background(), burn.Request{
		Signer: testKeypair(t, 0x01),
		Payee:  testKeypair(t, 0x02).PublicKey().String(),
	})
	require.Error(t, err)
	assert.Zero(t, calls)
}

func TestNew_DefaultBaseURL(t *testing.T) {
	c, err := New(keypair.NetworkMainnet)
	require.NoError(t, err)
	assert.Equal(t, "https://api.helium.io/v1/pending_transactions/", c.PendingURL(""))
}
