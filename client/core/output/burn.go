package output

import (
	"github.com/weisyn/burnwallet/client/core/builder"
	"github.com/weisyn/burnwallet/client/core/errs"
	"github.com/weisyn/burnwallet/client/core/keypair"
	"github.com/weisyn/burnwallet/client/core/transport"
	"github.com/weisyn/burnwallet/client/core/txn"
)

const (
	// NoHashSentinel 未提交时表格中哈希的占位
	NoHashSentinel = "none"

	// PreviewNotice 未提交时表格后的提示
	PreviewNotice = "Preview mode: use --commit to submit the transaction to the network"
)

// BurnView 燃烧结果的展示模型
// JSON键固定为 payee, amount, memo, fee, nonce, hash, txn, status
type BurnView struct {
	Payee  string  `json:"payee"`
	Amount float64 `json:"amount"` // HNT
	Memo   string  `json:"memo"`   // base64
	Fee    uint64  `json:"fee"`    // DC
	Nonce  uint64  `json:"nonce"`
	Hash   *string `json:"hash"` // 未提交时为null
	Txn    string  `json:"txn"`  // base64信封
	Status string  `json:"status"`

	amountText string
	state      *transport.PendingState
}

// NewBurnView 由已签名交易、信封、提交状态和状态链接构建展示模型
// 收款方从线格式字节重新解码,损坏时返回Presentation类错误
func NewBurnView(signed *builder.SignedBurn, envelope *txn.Envelope, status *transport.PendingStatus, pendingURL string) (*BurnView, error) {
	return viewFromRecord(signed.Record(), envelope, status, pendingURL)
}

func viewFromRecord(record *txn.TokenBurnV1, envelope *txn.Envelope, status *transport.PendingStatus, pendingURL string) (*BurnView, error) {
	const op = "render burn"

	payee, err := keypair.PublicKeyFromBytes(record.Payee)
	if err != nil {
		return nil, errs.E(errs.KindPresentation, op, err)
	}

	amount := builder.NewAmountFromBones(record.Amount)
	view := &BurnView{
		Payee:      payee.String(),
		Amount:     amount.ToHNT(),
		Memo:       builder.Memo(record.Memo).String(),
		Fee:        record.Fee,
		Nonce:      record.Nonce,
		Txn:        envelope.Base64(),
		Status:     pendingURL,
		amountText: amount.String(),
	}
	if status != nil {
		hash := status.Hash
		state := status.State
		view.Hash = &hash
		view.state = &state
	}
	return view, nil
}

// HashText 表格中的哈希文本
func (v *BurnView) HashText() string {
	if v.Hash == nil {
		return NoHashSentinel
	}
	return *v.Hash
}

// Footer 表格后的说明行
func (v *BurnView) Footer() string {
	if v.state == nil {
		return PreviewNotice
	}
	return "Pending state: " + v.state.String()
}

// Rows 表格行
func (v *BurnView) Rows() []KeyValue {
	return []KeyValue{
		{"Payee", v.Payee},
		{"Memo", v.Memo},
		{"Amount (HNT)", v.amountText},
		{"Fee (DC)", uintText(v.Fee)},
		{"Nonce", uintText(v.Nonce)},
		{"Hash", v.HashText()},
		{"Status", v.Status},
	}
}

// PrintBurn 按格式打印燃烧结果
func (f *Formatter) PrintBurn(view *BurnView) error {
	if f.format == FormatJSON {
		return f.printJSON(view)
	}

	rows := view.Rows()
	data := make([][]string, 0, len(rows)+1)
	data = append(data, []string{"Key", "Value"})
	for _, kv := range rows {
		data = append(data, []string{kv.Key, kv.Value})
	}
	if err := f.printTable(data); err != nil {
		return err
	}
	return f.printLine(view.Footer())
}
