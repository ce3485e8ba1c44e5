package burn

import (
	"context"
	"encoding/hex"

	"github.com/weisyn/burnwallet/client/core/builder"
	"github.com/weisyn/burnwallet/client/core/errs"
	"github.com/weisyn/burnwallet/client/core/transport"
	"github.com/weisyn/burnwallet/client/core/txn"
	"github.com/weisyn/burnwallet/client/core/wallet"
	"github.com/weisyn/burnwallet/internal/log"
)

// Service 燃烧交易业务服务
type Service struct {
	builder *builder.BurnBuilder
	gate    *SubmissionGate
	baseURL string
	logger  log.Logger
}

// NewService 创建燃烧交易业务服务
func NewService(client transport.Client, policy builder.Policy) *Service {
	return &Service{
		builder: builder.NewBurnBuilder(client, client, policy),
		gate:    NewSubmissionGate(client),
		baseURL: client.BaseURL(),
		logger:  log.With("module", "burn"),
	}
}

// Request 燃烧请求
type Request struct {
	Signer wallet.Signer  // 付款方签名器,其公钥即付款方
	Payee  string         // 收款方地址
	Amount builder.Amount // 燃烧金额
	Memo   string         // base64备注(可选)
	Nonce  *uint64        // 显式随机数(可选)
	Fee    *uint64        // 显式交易费(可选)
	Commit bool           // 是否提交到网络
}

// Result 燃烧结果
type Result struct {
	Signed     *builder.SignedBurn
	Envelope   *txn.Envelope
	Status     *transport.PendingStatus // 未提交时为nil
	PendingURL string                   // 未提交时不含哈希段
}

// Committed 是否已提交
func (r *Result) Committed() bool {
	return r.Status != nil
}

// Execute 执行燃烧流程
//
// 严格顺序:
//  1. 解析随机数并组装交易(含交易费计算)
//  2. 签名
//  3. 包装信封
//  4. 按commit决定是否提交
//
// 任一步骤失败立即返回该错误
func (s *Service) Execute(ctx context.Context, req Request) (*Result, error) {
	if req.Signer == nil {
		return nil, errs.Signing("execute burn", "no signer")
	}
	payer := req.Signer.PublicKey()
	logger := s.logger.With("payer", payer.String())

	logger.Debugf("building burn: payee=%s amount=%s", req.Payee, req.Amount)
	unsigned, err := s.builder.Build(ctx, builder.BurnParams{
		Payer:  payer,
		Payee:  req.Payee,
		Amount: req.Amount,
		Memo:   req.Memo,
		Nonce:  req.Nonce,
		Fee:    req.Fee,
	})
	if err != nil {
		return nil, err
	}

	signed, err := unsigned.Sign(req.Signer)
	if err != nil {
		return nil, err
	}
	hash := signed.Record().Hash()
	logger.Debugf("signed: nonce=%d fee=%d local_hash=%s", signed.Nonce(), signed.Fee(), hex.EncodeToString(hash[:]))

	envelope := signed.Envelope()

	status, err := s.gate.Submit(ctx, req.Commit, envelope)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Signed:     signed,
		Envelope:   envelope,
		Status:     status,
		PendingURL: transport.PendingURL(s.baseURL, ""),
	}
	if status != nil {
		result.PendingURL = transport.PendingURL(s.baseURL, status.Hash)
	}
	return result, nil
}
