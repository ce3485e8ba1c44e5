package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/weisyn/burnwallet/client/core/builder"
	"github.com/weisyn/burnwallet/client/core/burn"
	"github.com/weisyn/burnwallet/client/core/config"
	"github.com/weisyn/burnwallet/client/core/errs"
	"github.com/weisyn/burnwallet/client/core/keypair"
	"github.com/weisyn/burnwallet/client/core/output"
	"github.com/weisyn/burnwallet/client/core/wallet"
	"github.com/weisyn/burnwallet/internal/log"
)

var (
	burnPayee  string
	burnAmount string
	burnMemo   string
	burnNonce  uint64
	burnFee    uint64
	burnCommit bool
)

// burnCmd 燃烧HNT换取DC
var burnCmd = &cobra.Command{
	Use:   "burn",
	Short: "燃烧HNT换取DC",
	Long: `构建并签名燃烧交易,默认只预览不提交。

随机数与交易费未指定时从网络获取。

示例：
  burnwallet burn --payee <address> --amount 1.5
  burnwallet burn --payee <address> --amount 1.5 --memo AQIDBAUGBwg= --commit
  burnwallet burn --payee <address> --amount 1 --nonce 6 --fee 35000 --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := activeProfile()
		if err != nil {
			return err
		}

		// 参数错误在解锁keystore和访问网络之前报告
		req, err := newBurnRequest(profile.RejectZeroAmount)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("nonce") {
			req.Nonce = &burnNonce
		}
		if cmd.Flags().Changed("fee") {
			req.Fee = &burnFee
		}

		signer, err := unlockSigner(profile)
		if err != nil {
			return err
		}
		defer signer.Wipe()
		req.Signer = signer

		client, err := getClient(profile)
		if err != nil {
			return err
		}
		defer client.Close()

		service := burn.NewService(client, builder.Policy{RejectZeroAmount: profile.RejectZeroAmount})
		result, err := service.Execute(cmd.Context(), req)
		if err != nil {
			return err
		}

		view, err := output.NewBurnView(result.Signed, result.Envelope, result.Status, result.PendingURL)
		if err != nil {
			return err
		}
		return formatter.PrintBurn(view)
	},
}

func init() {
	burnCmd.Flags().StringVar(&burnPayee, "payee", "", "收款方地址 (获得DC的账户)")
	burnCmd.Flags().StringVar(&burnAmount, "amount", "", "燃烧金额 (HNT, 最多8位小数)")
	burnCmd.Flags().StringVar(&burnMemo, "memo", "", "base64备注 (最多8字节)")
	burnCmd.Flags().Uint64Var(&burnNonce, "nonce", 0, "显式随机数 (默认: 链上speculative_nonce+1)")
	burnCmd.Flags().Uint64Var(&burnFee, "fee", 0, "显式交易费 (DC, 默认按链上费率计算)")
	burnCmd.Flags().BoolVar(&burnCommit, "commit", false, "提交交易到网络")
	_ = burnCmd.MarkFlagRequired("payee")
	_ = burnCmd.MarkFlagRequired("amount")
}

// newBurnRequest 校验收款方、金额与备注,生成不含签名器的请求
func newBurnRequest(rejectZeroAmount bool) (burn.Request, error) {
	if _, err := keypair.ParsePublicKey(burnPayee); err != nil {
		return burn.Request{}, errs.E(errs.KindValidation, "parse payee", err)
	}
	if _, err := builder.ParseMemo(burnMemo); err != nil {
		return burn.Request{}, err
	}

	amount, err := builder.ParseHNT(burnAmount)
	if err != nil {
		return burn.Request{}, errs.E(errs.KindValidation, "parse amount", err)
	}
	if rejectZeroAmount && amount.IsZero() {
		return burn.Request{}, errs.Validation("parse amount", errs.ErrZeroAmount, "")
	}

	return burn.Request{
		Payee:  burnPayee,
		Amount: amount,
		Memo:   burnMemo,
		Commit: burnCommit,
	}, nil
}

// unlockSigner 解锁 Profile 的 keystore,并核对其网络
func unlockSigner(profile *config.Profile) (*keypair.Keypair, error) {
	network, err := profile.NetworkID()
	if err != nil {
		return nil, err
	}

	password, err := promptPassword("Keystore password")
	if err != nil {
		return nil, err
	}

	kp, err := wallet.UnlockKeystore(profile.KeystorePath, password)
	if err != nil {
		return nil, errs.E(errs.KindSigning, "unlock keystore", err)
	}
	if kp.PublicKey().Network() != network {
		kp.Wipe()
		return nil, errs.E(errs.KindSigning, "unlock keystore",
			fmt.Errorf("keystore is for %s, profile %s uses %s", kp.PublicKey().Network(), profile.Name, network))
	}

	log.Debugf("unlocked keystore %s for %s", profile.KeystorePath, kp.PublicKey())
	return kp, nil
}
