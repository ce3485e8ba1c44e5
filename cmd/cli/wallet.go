package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/weisyn/burnwallet/client/core/keypair"
	"github.com/weisyn/burnwallet/client/core/output"
	"github.com/weisyn/burnwallet/client/core/wallet"
)

var (
	walletSeed       string
	walletMnemonic   string
	walletPassphrase string
	walletNetwork    string
	walletLabel      string
)

// walletCmd 钱包管理命令
var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "钱包管理",
	Long:  "导入密钥并查看 Profile 对应的 keystore",
}

// walletImportCmd 导入密钥
var walletImportCmd = &cobra.Command{
	Use:   "import",
	Short: "导入密钥到keystore",
	Long: `从32字节种子(hex)或BIP39助记词导入密钥,加密保存到 Profile 的 keystore 路径。

示例：
  burnwallet wallet import --seed <64位hex>
  burnwallet wallet import --mnemonic "word1 word2 ... word12" --network testnet`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := activeProfile()
		if err != nil {
			return err
		}

		networkName := walletNetwork
		if networkName == "" {
			networkName = profile.Network
		}
		network, err := keypair.ParseNetwork(networkName)
		if err != nil {
			return err
		}

		seed, err := importSeed()
		if err != nil {
			return err
		}
		kp, err := keypair.NewKeypairFromSeed(network, seed)
		if err != nil {
			return err
		}
		defer kp.Wipe()

		password, err := promptNewPassword()
		if err != nil {
			return err
		}

		ks, err := wallet.SaveKeystore(profile.KeystorePath, kp, password, walletLabel)
		if err != nil {
			return err
		}

		formatter.PrintSuccess(fmt.Sprintf("keystore saved to %s", profile.KeystorePath))
		return formatter.PrintKeyValues(keystoreRows(ks, profile.KeystorePath))
	},
}

// walletInfoCmd 查看keystore信息
var walletInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "查看keystore信息",
	Long:  "显示 Profile 对应 keystore 的地址与网络,无需密码",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := activeProfile()
		if err != nil {
			return err
		}

		ks, err := wallet.LoadKeystore(profile.KeystorePath)
		if err != nil {
			return err
		}
		if _, err := ks.PublicKey(); err != nil {
			return fmt.Errorf("keystore %s: %w", profile.KeystorePath, err)
		}
		return formatter.PrintKeyValues(keystoreRows(ks, profile.KeystorePath))
	},
}

func init() {
	walletImportCmd.Flags().StringVar(&walletSeed, "seed", "", "32字节私钥种子 (hex)")
	walletImportCmd.Flags().StringVar(&walletMnemonic, "mnemonic", "", "BIP39助记词")
	walletImportCmd.Flags().StringVar(&walletPassphrase, "passphrase", "", "BIP39密码短语 (可选)")
	walletImportCmd.Flags().StringVar(&walletNetwork, "network", "", "网络: mainnet|testnet (默认取Profile)")
	walletImportCmd.Flags().StringVar(&walletLabel, "label", "", "keystore标签")
	walletImportCmd.MarkFlagsMutuallyExclusive("seed", "mnemonic")
	walletImportCmd.MarkFlagsOneRequired("seed", "mnemonic")

	walletCmd.AddCommand(walletImportCmd)
	walletCmd.AddCommand(walletInfoCmd)
}

// importSeed 从 --seed 或 --mnemonic 得到32字节种子
func importSeed() ([]byte, error) {
	if walletMnemonic != "" {
		return wallet.SeedFromMnemonic(walletMnemonic, walletPassphrase)
	}

	seed, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(walletSeed), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid seed hex: %w", err)
	}
	return seed, nil
}

func keystoreRows(ks *wallet.KeystoreV1, path string) []output.KeyValue {
	rows := []output.KeyValue{
		{Key: "Address", Value: ks.Address},
		{Key: "Network", Value: ks.Network},
		{Key: "Keystore", Value: path},
		{Key: "Created", Value: ks.CreatedAt},
	}
	if ks.Label != "" {
		rows = append(rows, output.KeyValue{Key: "Label", Value: ks.Label})
	}
	return rows
}
