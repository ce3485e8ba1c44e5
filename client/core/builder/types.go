package builder

import (
	"crypto/ed25519"
	"fmt"

	"github.com/weisyn/burnwallet/client/core/errs"
	"github.com/weisyn/burnwallet/client/core/keypair"
	"github.com/weisyn/burnwallet/client/core/txn"
	"github.com/weisyn/burnwallet/client/core/wallet"
)

// ===== Type-State 交易状态 =====
//
//	DraftBurn --Seal--> UnsignedBurn --Sign--> SignedBurn --Envelope--> txn.Envelope
//
// 只有DraftBurn可修改;UnsignedBurn只能签名一次;SignedBurn只读

// DraftBurn 草稿交易(可变状态)
type DraftBurn struct {
	payer  keypair.PublicKey
	payee  keypair.PublicKey
	amount Amount
	memo   Memo
	nonce  uint64
	fee    uint64
	policy Policy
}

// UnsignedBurn 已密封的未签名交易(不可变状态)
// 除签名外所有字段已确定
type UnsignedBurn struct {
	record *txn.TokenBurnV1
	payer  keypair.PublicKey
	payee  keypair.PublicKey
	spent  bool
}

// SignedBurn 已签名交易(可提交)
// 只提供读取方法,签名后不可修改
type SignedBurn struct {
	record *txn.TokenBurnV1
	payer  keypair.PublicKey
	payee  keypair.PublicKey
}

// Policy 构建策略
type Policy struct {
	// RejectZeroAmount 为true时拒绝零金额燃烧
	RejectZeroAmount bool
}

// ===== DraftBurn 方法 =====

// NewDraftBurn 创建草稿
func NewDraftBurn(policy Policy) *DraftBurn {
	return &DraftBurn{policy: policy}
}

// SetPayer 设置付款方
func (d *DraftBurn) SetPayer(payer keypair.PublicKey) *DraftBurn {
	d.payer = payer
	return d
}

// SetPayee 设置收款方
func (d *DraftBurn) SetPayee(payee keypair.PublicKey) *DraftBurn {
	d.payee = payee
	return d
}

// SetAmount 设置燃烧金额
func (d *DraftBurn) SetAmount(amount Amount) *DraftBurn {
	d.amount = amount
	return d
}

// SetMemo 设置备注
func (d *DraftBurn) SetMemo(memo Memo) *DraftBurn {
	d.memo = memo
	return d
}

// SetNonce 设置随机数
func (d *DraftBurn) SetNonce(nonce uint64) *DraftBurn {
	d.nonce = nonce
	return d
}

// SetFee 设置交易费
func (d *DraftBurn) SetFee(fee uint64) *DraftBurn {
	d.fee = fee
	return d
}

// Record 当前草稿的线格式记录(无签名)
func (d *DraftBurn) Record() *txn.TokenBurnV1 {
	return &txn.TokenBurnV1{
		Payer:  d.payer.Bytes(),
		Payee:  d.payee.Bytes(),
		Amount: d.amount.Bones(),
		Nonce:  d.nonce,
		Fee:    d.fee,
		Memo:   uint64(d.memo),
	}
}

// Seal 密封交易,转换为UnsignedBurn
// 这是从可变状态到不可变状态的唯一出口
func (d *DraftBurn) Seal() (*UnsignedBurn, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}

	return &UnsignedBurn{
		record: d.Record(),
		payer:  d.payer,
		payee:  d.payee,
	}, nil
}

// validate 验证草稿交易
func (d *DraftBurn) validate() error {
	const op = "seal burn"

	if d.payer.IsZero() {
		return errs.Validation(op, errs.ErrInvalidPublicKey, "payer not set")
	}
	if d.payee.IsZero() {
		return errs.Validation(op, errs.ErrInvalidPublicKey, "payee not set")
	}
	if d.policy.RejectZeroAmount && d.amount.IsZero() {
		return errs.Validation(op, errs.ErrZeroAmount, "")
	}
	return nil
}

// ===== UnsignedBurn 方法 =====

func (u *UnsignedBurn) Payer() keypair.PublicKey { return u.payer }
func (u *UnsignedBurn) Payee() keypair.PublicKey { return u.payee }
func (u *UnsignedBurn) Amount() Amount           { return NewAmountFromBones(u.record.Amount) }
func (u *UnsignedBurn) Memo() Memo               { return Memo(u.record.Memo) }
func (u *UnsignedBurn) Nonce() uint64            { return u.record.Nonce }
func (u *UnsignedBurn) Fee() uint64              { return u.record.Fee }

// SigningBytes 待签名的规范编码
func (u *UnsignedBurn) SigningBytes() []byte {
	return u.record.SigningBytes()
}

// Sign 签名交易,转换为SignedBurn
// 成功签名后该未签名交易被标记为已使用,再次签名返回错误
func (u *UnsignedBurn) Sign(signer wallet.Signer) (*SignedBurn, error) {
	const op = "sign burn"

	if u.spent {
		return nil, errs.Signing(op, "transaction already signed")
	}
	if signer == nil {
		return nil, errs.Signing(op, "no signer")
	}
	if !signer.PublicKey().Equal(u.payer) {
		return nil, errs.Signing(op, "signer %s does not match payer %s", signer.PublicKey(), u.payer)
	}

	msg := u.SigningBytes()
	sig, err := signer.Sign(msg)
	if err != nil {
		return nil, errs.Signing(op, "%v", err)
	}
	if len(sig) != ed25519.SignatureSize {
		return nil, errs.Signing(op, "signature length %d, expected %d", len(sig), ed25519.SignatureSize)
	}
	if !u.payer.Verify(msg, sig) {
		return nil, errs.Signing(op, "%v", ErrBadSignature)
	}

	signed := u.record.Clone()
	signed.Signature = sig
	u.spent = true

	return &SignedBurn{
		record: signed,
		payer:  u.payer,
		payee:  u.payee,
	}, nil
}

// ===== SignedBurn 方法 =====

func (s *SignedBurn) Payer() keypair.PublicKey { return s.payer }
func (s *SignedBurn) Payee() keypair.PublicKey { return s.payee }
func (s *SignedBurn) Amount() Amount           { return NewAmountFromBones(s.record.Amount) }
func (s *SignedBurn) Memo() Memo               { return Memo(s.record.Memo) }
func (s *SignedBurn) Nonce() uint64            { return s.record.Nonce }
func (s *SignedBurn) Fee() uint64              { return s.record.Fee }

// Signature 签名副本
func (s *SignedBurn) Signature() []byte {
	out := make([]byte, len(s.record.Signature))
	copy(out, s.record.Signature)
	return out
}

// Record 线格式记录的副本
func (s *SignedBurn) Record() *txn.TokenBurnV1 {
	return s.record.Clone()
}

// Envelope 将已签名交易包装为提交信封
func (s *SignedBurn) Envelope() *txn.Envelope {
	return &txn.Envelope{Txn: &txn.EnvelopeTokenBurn{TokenBurn: s.record.Clone()}}
}

// ===== 验证 =====

// VerifyBurn 用付款方公钥校验已签名交易
func VerifyBurn(s *SignedBurn) error {
	return VerifyTokenBurn(s.record)
}

// VerifyTokenBurn 校验线格式记录的签名
// 付款方公钥取自记录本身,签名消息为去掉签名字段后的编码
func VerifyTokenBurn(record *txn.TokenBurnV1) error {
	payer, err := keypair.PublicKeyFromBytes(record.Payer)
	if err != nil {
		return fmt.Errorf("verify burn: %w", err)
	}
	if !payer.Verify(record.SigningBytes(), record.Signature) {
		return fmt.Errorf("verify burn: %w", ErrBadSignature)
	}
	return nil
}
