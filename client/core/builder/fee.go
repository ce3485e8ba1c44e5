package builder

import (
	"context"
	"crypto/ed25519"
	"fmt"
	"math/bits"

	"github.com/weisyn/burnwallet/client/core/errs"
	"github.com/weisyn/burnwallet/client/core/transport"
	"github.com/weisyn/burnwallet/client/core/txn"
)

// FeeSchedule 交易费率表
type FeeSchedule struct {
	TxnFees     bool   // 是否收取交易费
	Multiplier  uint64 // 每个计费单元的DC
	PayloadSize uint64 // 每个计费单元的字节数
}

// FeeScheduleFromVars 从链变量提取费率表
func FeeScheduleFromVars(vars *transport.ChainVars) FeeSchedule {
	return FeeSchedule{
		TxnFees:     vars.TxnFees,
		Multiplier:  vars.TxnFeeMultiplier,
		PayloadSize: vars.DCPayloadSize,
	}
}

// CalculateFee 计算交易费
//
// 以 fee=0、签名为64个零字节的编码长度为计费大小:
//
//	fee = ceil(size / PayloadSize) * Multiplier
//
// 不收费时返回0。纯函数,相同输入得到相同结果
func CalculateFee(record *txn.TokenBurnV1, schedule FeeSchedule) (uint64, error) {
	if !schedule.TxnFees {
		return 0, nil
	}
	if schedule.PayloadSize == 0 {
		return 0, fmt.Errorf("%w: dc payload size is zero", errs.ErrFeeSchedule)
	}

	sized := record.Clone()
	sized.Fee = 0
	sized.Signature = make([]byte, ed25519.SignatureSize)
	size := uint64(len(sized.Marshal()))

	units := size / schedule.PayloadSize
	if size%schedule.PayloadSize != 0 {
		units++
	}

	hi, fee := bits.Mul64(units, schedule.Multiplier)
	if hi != 0 {
		return 0, fmt.Errorf("%w: fee overflows uint64", errs.ErrFeeSchedule)
	}
	return fee, nil
}

// ResolveFee 解析交易费
// 显式指定时原样返回且不获取费率表
func ResolveFee(ctx context.Context, fees transport.FeeGetter, record *txn.TokenBurnV1, override *uint64) (uint64, error) {
	const op = "resolve fee"

	if override != nil {
		return *override, nil
	}
	if fees == nil {
		return 0, errs.Lookup(op, errs.ErrFeeSchedule, fmt.Errorf("no fee client"))
	}

	vars, err := fees.GetChainVars(ctx)
	if err != nil {
		return 0, errs.Lookup(op, errs.ErrFeeSchedule, err)
	}

	fee, err := CalculateFee(record, FeeScheduleFromVars(vars))
	if err != nil {
		return 0, errs.E(errs.KindLookup, op, err)
	}
	return fee, nil
}
