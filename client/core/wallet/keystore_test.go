package wallet

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weisyn/burnwallet/client/core/keypair"
	"github.com/weisyn/burnwallet/client/pkg/jsonx"
)

func init() {
	// 测试中降低迭代次数
	kdfIterations = 1024
}

func testKeypair(t *testing.T, network keypair.Network) *keypair.Keypair {
	t.Helper()
	kp, err := keypair.NewKeypairFromSeed(network, bytes.Repeat([]byte{0x42}, 32))
	require.NoError(t, err)
	return kp
}

func TestKeystore_SaveAndUnlock(t *testing.T) {
	for _, network := range []keypair.Network{keypair.NetworkMainnet, keypair.NetworkTestnet} {
		t.Run(network.String(), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "keys", "wallet.json")
			kp := testKeypair(t, network)

			ks, err := SaveKeystore(path, kp, "correct horse", "main")
			require.NoError(t, err)
			assert.Equal(t, KeystoreVersion, ks.Version)
			assert.Equal(t, network.String(), ks.Network)
			assert.Equal(t, kp.PublicKey().String(), ks.Address)
			_, err = uuid.Parse(ks.ID)
			assert.NoError(t, err)

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

			unlocked, err := UnlockKeystore(path, "correct horse")
			require.NoError(t, err)
			assert.True(t, unlocked.PublicKey().Equal(kp.PublicKey()))
			assert.Equal(t, kp.Seed(), unlocked.Seed())
		})
	}
}

func TestKeystore_WrongPassword(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.json")
	_, err := SaveKeystore(path, testKeypair(t, keypair.NetworkMainnet), "secret", "")
	require.NoError(t, err)

	_, err = UnlockKeystore(path, "not secret")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestKeystore_NoOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.json")
	kp := testKeypair(t, keypair.NetworkMainnet)
	_, err := SaveKeystore(path, kp, "secret", "")
	require.NoError(t, err)

	_, err = SaveKeystore(path, kp, "other", "")
	assert.ErrorIs(t, err, ErrKeystoreExists)
}

func TestKeystore_TamperedAddress(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.json")
	ks, err := SaveKeystore(path, testKeypair(t, keypair.NetworkMainnet), "secret", "")
	require.NoError(t, err)

	other, err := keypair.NewKeypairFromSeed(keypair.NetworkMainnet, bytes.Repeat([]byte{0x07}, 32))
	require.NoError(t, err)
	ks.Address = other.PublicKey().String()

	data, err := jsonx.Marshal(ks)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0600))

	_, err = UnlockKeystore(path, "secret")
	assert.ErrorContains(t, err, "does not match")
}

func TestLoadKeystore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.json")
	kp := testKeypair(t, keypair.NetworkTestnet)
	_, err := SaveKeystore(path, kp, "secret", "label")
	require.NoError(t, err)

	ks, err := LoadKeystore(path)
	require.NoError(t, err)
	assert.Equal(t, "label", ks.Label)

	pub, err := ks.PublicKey()
	require.NoError(t, err)
	assert.True(t, pub.Equal(kp.PublicKey()))

	_, err = LoadKeystore(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"version":"9.9.9"}`), 0600))
	_, err = LoadKeystore(bad)
	assert.ErrorContains(t, err, "unsupported keystore version")
}

func TestKeystore_FailedWriteLeavesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.json")
	kp := testKeypair(t, keypair.NetworkMainnet)

	orig := writeKeystoreData
	writeKeystoreData = func(w io.Writer, data []byte) error {
		_, _ = w.Write(data[:len(data)/2])
		return errors.New("disk full")
	}
	_, err := SaveKeystore(path, kp, "secret", "")
	writeKeystoreData = orig

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	// 重试不会被已存在的半成品文件阻挡
	_, err = SaveKeystore(path, kp, "secret", "")
	require.NoError(t, err)
	unlocked, err := UnlockKeystore(path, "secret")
	require.NoError(t, err)
	assert.True(t, unlocked.PublicKey().Equal(kp.PublicKey()))
}
