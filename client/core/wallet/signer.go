// Package wallet provides wallet signing functionality for client operations.
package wallet

import (
	"github.com/weisyn/burnwallet/client/core/keypair"
)

// Signer 签名器接口 - 统一的签名抽象
// 来源可以是解锁后的Keystore或助记词导入的密钥
type Signer interface {
	// PublicKey 签名者公钥,必须与交易付款方一致
	PublicKey() keypair.PublicKey

	// Sign 对消息做Ed25519签名,返回64字节签名
	Sign(msg []byte) ([]byte, error)
}

var _ Signer = (*keypair.Keypair)(nil)
