package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/weisyn/burnwallet/client/core/output"
	"github.com/weisyn/burnwallet/client/core/transport"
)

// profileCmd Profile管理命令
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Profile管理",
	Long:  "管理配置Profile,支持多网络切换(mainnet/testnet)",
}

// profileListCmd 列出所有profiles
var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "列出所有profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		current := profileMgr.CurrentProfileName()

		var rows []output.KeyValue
		for _, name := range profileMgr.ListProfiles() {
			profile, err := profileMgr.GetProfile(name)
			if err != nil {
				continue
			}
			value := profile.Network
			if name == current {
				value += " (current)"
			}
			rows = append(rows, output.KeyValue{Key: name, Value: value})
		}
		return formatter.PrintKeyValues(rows)
	},
}

// profileCurrentCmd 显示当前profile
var profileCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "显示当前profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := activeProfile()
		if err != nil {
			return err
		}

		apiURL := profile.APIURL
		if apiURL == "" {
			network, err := profile.NetworkID()
			if err != nil {
				return err
			}
			if apiURL, err = transport.DefaultBaseURL(network); err != nil {
				return err
			}
		}

		return formatter.PrintKeyValues([]output.KeyValue{
			{Key: "Name", Value: profile.Name},
			{Key: "Network", Value: profile.Network},
			{Key: "API", Value: apiURL},
			{Key: "Keystore", Value: profile.KeystorePath},
			{Key: "Timeout", Value: time.Duration(profile.Timeout).String()},
			{Key: "RejectZeroAmount", Value: fmt.Sprint(profile.RejectZeroAmount)},
		})
	},
}

// profileSwitchCmd 切换profile
var profileSwitchCmd = &cobra.Command{
	Use:   "switch <name>",
	Short: "切换profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := profileMgr.SwitchProfile(args[0]); err != nil {
			return err
		}
		formatter.PrintSuccess(fmt.Sprintf("switched to profile '%s'", args[0]))
		return nil
	},
}

func init() {
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileCurrentCmd)
	profileCmd.AddCommand(profileSwitchCmd)
}
