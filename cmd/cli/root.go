package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/weisyn/burnwallet/client/core/config"
	"github.com/weisyn/burnwallet/client/core/output"
	"github.com/weisyn/burnwallet/client/core/transport"
	logconfig "github.com/weisyn/burnwallet/internal/config/log"
	"github.com/weisyn/burnwallet/internal/log"
)

// GlobalFlags 全局标志
type GlobalFlags struct {
	Profile      string // Profile名称
	ConfigDir    string // 配置目录
	OutputFormat string // 输出格式
	Verbose      bool   // 详细模式
}

var (
	globalFlags GlobalFlags
	profileMgr  *config.ProfileManager
	formatter   *output.Formatter
)

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:   "burnwallet",
	Short: "HNT 燃烧钱包命令行客户端",
	Long: `burnwallet - 将 HNT 燃烧为 DC 的钱包命令行工具

- 导入密钥并保存为加密 keystore
- 构建、签名燃烧交易并预览
- 使用 --commit 提交到网络

多网络配置通过 profile 管理(mainnet/testnet)。`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		profileMgr, err = config.NewProfileManager(globalFlags.ConfigDir)
		if err != nil {
			return fmt.Errorf("init config: %w", err)
		}

		format, err := output.ParseFormat(globalFlags.OutputFormat)
		if err != nil {
			return err
		}
		formatter = output.NewFormatter(format, os.Stdout)

		profile, err := activeProfile()
		if err != nil {
			return err
		}
		return setupLogger(profile)
	},
}

// Execute 执行根命令,返回进程退出码
func Execute(ctx context.Context) int {
	defer func() { _ = log.Sync() }()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globalFlags.Profile, "profile", "", "使用指定的Profile (默认使用当前Profile)")
	rootCmd.PersistentFlags().StringVar(&globalFlags.ConfigDir, "config-dir", "", "配置目录 (默认: ~/.burnwallet)")
	rootCmd.PersistentFlags().StringVar(&globalFlags.OutputFormat, "format", string(output.FormatTable), "输出格式: table|json")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "v", false, "详细日志 (debug级别)")

	rootCmd.AddCommand(burnCmd)
	rootCmd.AddCommand(walletCmd)
	rootCmd.AddCommand(profileCmd)
}

// activeProfile 返回 --profile 指定的或当前的 Profile
func activeProfile() (*config.Profile, error) {
	if globalFlags.Profile != "" {
		return profileMgr.GetProfile(globalFlags.Profile)
	}
	return profileMgr.GetCurrentProfile()
}

// setupLogger 按 Profile 日志配置初始化全局日志,-v 提升到 debug
func setupLogger(profile *config.Profile) error {
	cfg := logconfig.New(profile.Log)
	if globalFlags.Verbose {
		cfg = cfg.WithLevel("debug")
	}

	logger, err := log.New(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	log.SetLogger(logger.With("profile", profile.Name))
	return nil
}

// getClient 按 Profile 创建传输客户端
func getClient(profile *config.Profile) (transport.Client, error) {
	clientConfig, err := profile.ClientConfig()
	if err != nil {
		return nil, err
	}
	return transport.NewClient(clientConfig)
}
