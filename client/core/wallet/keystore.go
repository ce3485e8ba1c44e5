package wallet

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/weisyn/burnwallet/client/core/keypair"
	"github.com/weisyn/burnwallet/client/pkg/jsonx"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeystoreVersion 当前Keystore格式版本
	KeystoreVersion = "1.0.0"

	cipherAES256GCM = "aes-256-gcm"
	kdfPBKDF2       = "pbkdf2"
	prfHMACSHA256   = "hmac-sha256"
	keyLen          = 32
	saltLen         = 32
)

// kdfIterations PBKDF2迭代次数
var kdfIterations = 262144

var (
	// ErrWrongPassword 密码错误或文件被篡改
	ErrWrongPassword = errors.New("wrong password")

	// ErrKeystoreExists 目标文件已存在
	ErrKeystoreExists = errors.New("keystore already exists")
)

// KeystoreV1 Keystore文件格式(v1.0.0)
type KeystoreV1 struct {
	Version string   `json:"version"` // "1.0.0"
	ID      string   `json:"id"`      // UUID
	Address string   `json:"address"` // Base58Check
	Network string   `json:"network"` // mainnet | testnet
	Crypto  CryptoV1 `json:"crypto"`

	// 元数据
	CreatedAt string `json:"created_at"`
	Label     string `json:"label,omitempty"`
}

// CryptoV1 加密参数
type CryptoV1 struct {
	Cipher       string       `json:"cipher"`     // "aes-256-gcm"
	Ciphertext   string       `json:"ciphertext"` // hex编码
	CipherParams CipherParams `json:"cipherparams"`
	KDF          string       `json:"kdf"` // "pbkdf2"
	KDFParams    KDFParams    `json:"kdfparams"`
	MAC          string       `json:"mac"` // hex编码的MAC
}

// CipherParams 密码参数
type CipherParams struct {
	IV string `json:"iv"` // hex编码的初始化向量
}

// KDFParams 密钥派生参数
type KDFParams struct {
	DKLen int    `json:"dklen"` // 派生密钥长度(32)
	Salt  string `json:"salt"`  // hex编码的盐值
	C     int    `json:"c"`     // 迭代次数
	PRF   string `json:"prf"`   // "hmac-sha256"
}

// PublicKey 从地址字段解析公钥,无需密码
func (k *KeystoreV1) PublicKey() (keypair.PublicKey, error) {
	return keypair.ParsePublicKey(k.Address)
}

// LoadKeystore 读取并解析Keystore文件,不解密
func LoadKeystore(path string) (*KeystoreV1, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keystore: %w", err)
	}

	var ks KeystoreV1
	if err := jsonx.Unmarshal(data, &ks); err != nil {
		return nil, fmt.Errorf("parse keystore: %w", err)
	}
	if ks.Version != KeystoreVersion {
		return nil, fmt.Errorf("unsupported keystore version %q", ks.Version)
	}
	return &ks, nil
}

// UnlockKeystore 用密码解锁Keystore,返回密钥对
func UnlockKeystore(path string, password string) (*keypair.Keypair, error) {
	ks, err := LoadKeystore(path)
	if err != nil {
		return nil, err
	}

	network, err := keypair.ParseNetwork(ks.Network)
	if err != nil {
		return nil, fmt.Errorf("parse keystore: %w", err)
	}

	decryptKey, err := deriveKey(password, ks.Crypto)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	defer zeroBytes(decryptKey)

	seed, err := decrypt(ks.Crypto, decryptKey)
	if err != nil {
		return nil, err
	}
	defer zeroBytes(seed)

	kp, err := keypair.NewKeypairFromSeed(network, seed)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}

	// 地址字段可被篡改,以解密出的密钥为准并核对
	if kp.PublicKey().String() != ks.Address {
		kp.Wipe()
		return nil, fmt.Errorf("keystore address %s does not match decrypted key", ks.Address)
	}
	return kp, nil
}

// SaveKeystore 加密密钥对并写入新文件(0600),不覆盖已有文件
func SaveKeystore(path string, kp *keypair.Keypair, password string, label string) (*KeystoreV1, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create keystore dir: %w", err)
	}

	seed := kp.Seed()
	defer zeroBytes(seed)

	crypto, err := encrypt(seed, password)
	if err != nil {
		return nil, fmt.Errorf("encrypt: %w", err)
	}

	pub := kp.PublicKey()
	ks := &KeystoreV1{
		Version:   KeystoreVersion,
		ID:        uuid.NewString(),
		Address:   pub.String(),
		Network:   pub.Network().String(),
		Crypto:    crypto,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Label:     label,
	}

	data, err := jsonx.MarshalIndent(ks, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal json: %w", err)
	}

	if err := writeNewFile(path, data); err != nil {
		return nil, err
	}
	return ks, nil
}

// writeKeystoreData 写入文件内容
var writeKeystoreData = func(w io.Writer, data []byte) error {
	_, err := w.Write(data)
	return err
}

// writeNewFile 创建新文件(0600)并写入,写入失败时删除半成品以便重试
func writeNewFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrKeystoreExists, path)
		}
		return fmt.Errorf("write keystore: %w", err)
	}

	err = writeKeystoreData(f, data)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("write keystore: %w", err)
	}
	return nil
}

// ===== Keystore加密/解密辅助函数 =====

// deriveKey 派生解密密钥
func deriveKey(password string, crypto CryptoV1) ([]byte, error) {
	salt, err := hex.DecodeString(crypto.KDFParams.Salt)
	if err != nil {
		return nil, fmt.Errorf("decode salt: %w", err)
	}

	switch crypto.KDF {
	case kdfPBKDF2:
		if crypto.KDFParams.PRF != prfHMACSHA256 {
			return nil, fmt.Errorf("unsupported PRF: %s", crypto.KDFParams.PRF)
		}
		if crypto.KDFParams.C <= 0 || crypto.KDFParams.DKLen != keyLen {
			return nil, fmt.Errorf("invalid kdf params")
		}
		return pbkdf2.Key([]byte(password), salt, crypto.KDFParams.C, crypto.KDFParams.DKLen, sha256.New), nil

	default:
		return nil, fmt.Errorf("unsupported KDF: %s", crypto.KDF)
	}
}

// decrypt 校验MAC并解密密文
func decrypt(crypto CryptoV1, key []byte) ([]byte, error) {
	ciphertext, err := hex.DecodeString(crypto.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("decode ciphertext: %w", err)
	}
	iv, err := hex.DecodeString(crypto.CipherParams.IV)
	if err != nil {
		return nil, fmt.Errorf("decode iv: %w", err)
	}
	mac, err := hex.DecodeString(crypto.MAC)
	if err != nil {
		return nil, fmt.Errorf("decode mac: %w", err)
	}

	if !hmac.Equal(mac, computeMAC(key, ciphertext)) {
		return nil, ErrWrongPassword
	}

	switch crypto.Cipher {
	case cipherAES256GCM:
		gcm, err := newGCM(key)
		if err != nil {
			return nil, err
		}
		if len(iv) != gcm.NonceSize() {
			return nil, fmt.Errorf("invalid iv length %d", len(iv))
		}
		plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrWrongPassword, err)
		}
		if len(plaintext) != ed25519.SeedSize {
			return nil, fmt.Errorf("invalid seed length %d", len(plaintext))
		}
		return plaintext, nil

	default:
		return nil, fmt.Errorf("unsupported cipher: %s", crypto.Cipher)
	}
}

// encrypt 加密明文
func encrypt(plaintext []byte, password string) (CryptoV1, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return CryptoV1{}, fmt.Errorf("generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, kdfIterations, keyLen, sha256.New)
	defer zeroBytes(key)

	gcm, err := newGCM(key)
	if err != nil {
		return CryptoV1{}, err
	}

	iv := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return CryptoV1{}, fmt.Errorf("generate iv: %w", err)
	}

	ciphertext := gcm.Seal(nil, iv, plaintext, nil)

	return CryptoV1{
		Cipher:     cipherAES256GCM,
		Ciphertext: hex.EncodeToString(ciphertext),
		CipherParams: CipherParams{
			IV: hex.EncodeToString(iv),
		},
		KDF: kdfPBKDF2,
		KDFParams: KDFParams{
			DKLen: keyLen,
			Salt:  hex.EncodeToString(salt),
			C:     kdfIterations,
			PRF:   prfHMACSHA256,
		},
		MAC: hex.EncodeToString(computeMAC(key, ciphertext)),
	}, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("new cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("new gcm: %w", err)
	}
	return gcm, nil
}

// computeMAC sha256(key[16:] || ciphertext)
func computeMAC(key, ciphertext []byte) []byte {
	h := sha256.New()
	h.Write(key[16:])
	h.Write(ciphertext)
	return h.Sum(nil)
}

// zeroBytes 安全清除敏感数据
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
