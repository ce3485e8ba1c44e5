// Package keypair 提供Ed25519密钥对、公钥二进制格式与Base58Check地址
//
// 公钥二进制格式(33字节):
//   - 第1字节: 网络标识 | 密钥类型 (主网0x00/测试网0x10, Ed25519为0x01)
//   - 后32字节: Ed25519公钥
//
// 地址为上述33字节的Base58Check编码(双SHA256校验和, 版本字节0x00)
package keypair

import (
	"bytes"
	"crypto/ed25519"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/weisyn/burnwallet/client/core/errs"
)

const (
	// KeyTypeEd25519 Ed25519密钥类型
	KeyTypeEd25519 byte = 0x01

	// PublicKeyLength 公钥二进制长度
	PublicKeyLength = 1 + ed25519.PublicKeySize

	// AddressVersion Base58Check版本字节
	AddressVersion byte = 0x00

	keyTypeMask = 0x0F
	networkMask = 0xF0
)

// Network 网络标识
type Network byte

const (
	NetworkMainnet Network = 0x00
	NetworkTestnet Network = 0x10
)

// String 返回网络名称
func (n Network) String() string {
	switch n {
	case NetworkMainnet:
		return "mainnet"
	case NetworkTestnet:
		return "testnet"
	default:
		return fmt.Sprintf("network(0x%02x)", byte(n))
	}
}

// Known 是否为主网或测试网
func (n Network) Known() bool {
	return n == NetworkMainnet || n == NetworkTestnet
}

// ParseNetwork 从名称解析网络
func ParseNetwork(name string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mainnet", "":
		return NetworkMainnet, nil
	case "testnet":
		return NetworkTestnet, nil
	default:
		return 0, fmt.Errorf("unknown network %q", name)
	}
}

// PublicKey 带网络标识的Ed25519公钥
type PublicKey struct {
	network Network
	key     ed25519.PublicKey
}

// NewPublicKey 由网络和原始Ed25519公钥构造
func NewPublicKey(network Network, key ed25519.PublicKey) (PublicKey, error) {
	if len(key) != ed25519.PublicKeySize {
		return PublicKey{}, fmt.Errorf("%w: expected %d key bytes, got %d", errs.ErrInvalidPublicKey, ed25519.PublicKeySize, len(key))
	}
	if !network.Known() {
		return PublicKey{}, fmt.Errorf("%w: unknown network 0x%02x", errs.ErrInvalidPublicKey, byte(network))
	}
	k := make(ed25519.PublicKey, ed25519.PublicKeySize)
	copy(k, key)
	return PublicKey{network: network, key: k}, nil
}

// PublicKeyFromBytes 解析33字节的公钥二进制格式
func PublicKeyFromBytes(data []byte) (PublicKey, error) {
	if len(data) != PublicKeyLength {
		return PublicKey{}, fmt.Errorf("%w: expected %d bytes, got %d", errs.ErrInvalidPublicKey, PublicKeyLength, len(data))
	}
	if data[0]&keyTypeMask != KeyTypeEd25519 {
		return PublicKey{}, fmt.Errorf("%w: unsupported key type 0x%02x", errs.ErrInvalidPublicKey, data[0]&keyTypeMask)
	}
	return NewPublicKey(Network(data[0]&networkMask), ed25519.PublicKey(data[1:]))
}

// ParsePublicKey 解析Base58Check地址
func ParsePublicKey(address string) (PublicKey, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return PublicKey{}, fmt.Errorf("%w: empty address", errs.ErrInvalidPublicKey)
	}

	payload, version, err := base58.CheckDecode(address)
	if err != nil {
		return PublicKey{}, fmt.Errorf("%w: %v", errs.ErrInvalidPublicKey, err)
	}
	if version != AddressVersion {
		return PublicKey{}, fmt.Errorf("%w: unexpected version 0x%02x", errs.ErrInvalidPublicKey, version)
	}

	return PublicKeyFromBytes(payload)
}

// Bytes 返回33字节二进制格式
func (p PublicKey) Bytes() []byte {
	out := make([]byte, 0, PublicKeyLength)
	out = append(out, byte(p.network)|KeyTypeEd25519)
	return append(out, p.key...)
}

// String 返回Base58Check地址
func (p PublicKey) String() string {
	return base58.CheckEncode(p.Bytes(), AddressVersion)
}

// Network 返回公钥所属网络
func (p PublicKey) Network() Network {
	return p.network
}

// Ed25519 返回原始Ed25519公钥
func (p PublicKey) Ed25519() ed25519.PublicKey {
	return p.key
}

// IsZero 是否为零值
func (p PublicKey) IsZero() bool {
	return len(p.key) == 0
}

// Equal 比较两个公钥
func (p PublicKey) Equal(other PublicKey) bool {
	return p.network == other.network && bytes.Equal(p.key, other.key)
}

// Verify 校验Ed25519签名
func (p PublicKey) Verify(msg, sig []byte) bool {
	if len(p.key) != ed25519.PublicKeySize || len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(p.key, msg, sig)
}

// Keypair Ed25519密钥对
type Keypair struct {
	network Network
	private ed25519.PrivateKey
	public  PublicKey
}

// NewKeypairFromSeed 由32字节种子构造密钥对
func NewKeypairFromSeed(network Network, seed []byte) (*Keypair, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("invalid seed length: expected %d bytes, got %d", ed25519.SeedSize, len(seed))
	}

	private := ed25519.NewKeyFromSeed(seed)
	public, err := NewPublicKey(network, private.Public().(ed25519.PublicKey))
	if err != nil {
		return nil, err
	}

	return &Keypair{
		network: network,
		private: private,
		public:  public,
	}, nil
}

// PublicKey 返回公钥
func (k *Keypair) PublicKey() PublicKey {
	return k.public
}

// Seed 返回私钥种子的副本
func (k *Keypair) Seed() []byte {
	seed := make([]byte, ed25519.SeedSize)
	copy(seed, k.private.Seed())
	return seed
}

// Sign 对消息做Ed25519签名
func (k *Keypair) Sign(msg []byte) ([]byte, error) {
	if len(k.private) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("private key unavailable")
	}
	return ed25519.Sign(k.private, msg), nil
}

// Wipe 清除内存中的私钥
func (k *Keypair) Wipe() {
	for i := range k.private {
		k.private[i] = 0
	}
	k.private = nil
}
