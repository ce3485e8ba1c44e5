// Package burn 燃烧交易业务服务: 串联构建、签名、包装与提交
package burn

import (
	"context"
	"fmt"

	"github.com/weisyn/burnwallet/client/core/errs"
	"github.com/weisyn/burnwallet/client/core/transport"
	"github.com/weisyn/burnwallet/client/core/txn"
	"github.com/weisyn/burnwallet/internal/log"
)

// SubmissionGate 提交闸门
// commit=false 时不访问网络并返回nil状态;commit=true 时恰好提交一次,不重试
type SubmissionGate struct {
	submitter transport.Submitter
	logger    log.Logger
}

// NewSubmissionGate 创建提交闸门
func NewSubmissionGate(submitter transport.Submitter) *SubmissionGate {
	return &SubmissionGate{
		submitter: submitter,
		logger:    log.With("module", "burn"),
	}
}

// Submit 按commit标志决定是否提交信封
func (g *SubmissionGate) Submit(ctx context.Context, commit bool, envelope *txn.Envelope) (*transport.PendingStatus, error) {
	const op = "submit burn"

	if !commit {
		g.logger.Debug("preview mode, submission skipped")
		return nil, nil
	}
	if envelope == nil || envelope.Txn == nil {
		return nil, errs.Submission(op, fmt.Errorf("empty envelope"))
	}
	if g.submitter == nil {
		return nil, errs.Submission(op, fmt.Errorf("no submission client"))
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Submission(op, err)
	}

	status, err := g.submitter.SubmitTxn(ctx, envelope.Base64())
	if err != nil {
		return nil, errs.Submission(op, err)
	}
	if status == nil || status.Hash == "" {
		return nil, errs.Submission(op, fmt.Errorf("node returned no transaction hash"))
	}

	g.logger.Debugf("submitted, hash=%s state=%s", status.Hash, status.State)
	return status, nil
}
