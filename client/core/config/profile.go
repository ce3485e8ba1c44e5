// Package config provides profile management functionality for client configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/weisyn/burnwallet/client/core/keypair"
	"github.com/weisyn/burnwallet/client/core/transport"
	"github.com/weisyn/burnwallet/client/pkg/jsonx"
	logconfig "github.com/weisyn/burnwallet/internal/config/log"
	"github.com/weisyn/burnwallet/internal/log"
)

const (
	// DefaultConfigDirName 默认配置目录名(位于用户主目录下)
	DefaultConfigDirName = ".burnwallet"

	// DefaultProfile 首次运行时的当前profile
	DefaultProfile = "mainnet"

	defaultTimeout = 30 * time.Second
)

// Profile CLI配置Profile
type Profile struct {
	Name    string `json:"name"`    // Profile名称: mainnet/testnet/...
	Network string `json:"network"` // mainnet | testnet

	// API根地址,为空时按网络取默认值
	APIURL string `json:"api_url,omitempty"`

	// Keystore文件路径
	KeystorePath string `json:"keystore_path"`

	// 请求超时
	Timeout Duration `json:"timeout"`

	// 交易策略
	RejectZeroAmount bool `json:"reject_zero_amount,omitempty"` // 拒绝零金额燃烧

	// 日志
	Log *logconfig.LogOptions `json:"log,omitempty"`
}

// NetworkID 解析网络标识
func (p *Profile) NetworkID() (keypair.Network, error) {
	return keypair.ParseNetwork(p.Network)
}

// ClientConfig 生成传输层配置
func (p *Profile) ClientConfig() (transport.ClientConfig, error) {
	network, err := p.NetworkID()
	if err != nil {
		return transport.ClientConfig{}, fmt.Errorf("profile %s: %w", p.Name, err)
	}
	return transport.ClientConfig{
		Network: network,
		BaseURL: p.APIURL,
		Timeout: time.Duration(p.Timeout),
	}, nil
}

// Duration 时间duration(支持JSON序列化)
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return jsonx.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := jsonx.Unmarshal(data, &s); err != nil {
		return err
	}

	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}

	*d = Duration(dur)
	return nil
}

// ProfileManager Profile管理器
type ProfileManager struct {
	configDir      string
	currentProfile string
	profiles       map[string]*Profile
}

// NewProfileManager 创建Profile管理器
func NewProfileManager(configDir string) (*ProfileManager, error) {
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		configDir = filepath.Join(homeDir, DefaultConfigDirName)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}

	pm := &ProfileManager{
		configDir: configDir,
		profiles:  make(map[string]*Profile),
	}

	if err := pm.loadProfiles(); err != nil {
		return nil, err
	}

	if err := pm.loadCurrentProfile(); err != nil {
		pm.currentProfile = DefaultProfile
	}

	return pm, nil
}

// ConfigDir 配置目录
func (pm *ProfileManager) ConfigDir() string {
	return pm.configDir
}

// loadProfiles 加载所有profiles
func (pm *ProfileManager) loadProfiles() error {
	profilesDir := filepath.Join(pm.configDir, "profiles")

	// profiles目录不存在时创建默认profiles
	if _, err := os.Stat(profilesDir); os.IsNotExist(err) {
		if err := os.MkdirAll(profilesDir, 0700); err != nil {
			return fmt.Errorf("create profiles dir: %w", err)
		}
		if err := pm.createDefaultProfiles(); err != nil {
			return err
		}
	}

	entries, err := os.ReadDir(profilesDir)
	if err != nil {
		return fmt.Errorf("read profiles dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !isJSONFile(entry.Name()) {
			continue
		}

		profile, err := pm.loadProfile(filepath.Join(profilesDir, entry.Name()))
		if err != nil {
			// 记录错误但继续
			log.Warnf("failed to load profile %s: %v", entry.Name(), err)
			continue
		}

		pm.profiles[profile.Name] = profile
	}

	return nil
}

// loadProfile 加载单个profile
func (pm *ProfileManager) loadProfile(filePath string) (*Profile, error) {
	//nolint:gosec // G304: filePath 来自配置目录
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}

	var profile Profile
	if err := jsonx.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	if profile.Name == "" {
		profile.Name = strings.TrimSuffix(filepath.Base(filePath), ".json")
	}
	if _, err := profile.NetworkID(); err != nil {
		return nil, err
	}

	pm.applyDefaults(&profile)
	return &profile, nil
}

// applyDefaults 填充默认路径与网络配置
func (pm *ProfileManager) applyDefaults(profile *Profile) {
	if profile.KeystorePath == "" {
		profile.KeystorePath = filepath.Join(pm.configDir, "keystores", profile.Name+".json")
	}
	if profile.Timeout == 0 {
		profile.Timeout = Duration(defaultTimeout)
	}
}

// loadCurrentProfile 加载当前profile
func (pm *ProfileManager) loadCurrentProfile() error {
	//nolint:gosec // G304: 固定文件名
	data, err := os.ReadFile(filepath.Join(pm.configDir, "current"))
	if err != nil {
		return err
	}

	pm.currentProfile = strings.TrimSpace(string(data))
	return nil
}

// saveCurrentProfile 保存当前profile
func (pm *ProfileManager) saveCurrentProfile() error {
	return os.WriteFile(filepath.Join(pm.configDir, "current"), []byte(pm.currentProfile), 0600)
}

// createDefaultProfiles 创建默认profiles
func (pm *ProfileManager) createDefaultProfiles() error {
	profiles := []*Profile{
		{
			Name:    "mainnet",
			Network: keypair.NetworkMainnet.String(),
			APIURL:  transport.MainnetBaseURL,
			Timeout: Duration(defaultTimeout),
		},
		{
			Name:    "testnet",
			Network: keypair.NetworkTestnet.String(),
			APIURL:  transport.TestnetBaseURL,
			Timeout: Duration(defaultTimeout),
		},
	}

	for _, profile := range profiles {
		if err := pm.SaveProfile(profile); err != nil {
			return err
		}
	}

	pm.currentProfile = DefaultProfile
	return pm.saveCurrentProfile()
}

// GetProfile 获取指定profile
func (pm *ProfileManager) GetProfile(name string) (*Profile, error) {
	profile, exists := pm.profiles[name]
	if !exists {
		return nil, fmt.Errorf("profile not found: %s", name)
	}
	return profile, nil
}

// CurrentProfileName 当前profile名称
func (pm *ProfileManager) CurrentProfileName() string {
	return pm.currentProfile
}

// GetCurrentProfile 获取当前profile
func (pm *ProfileManager) GetCurrentProfile() (*Profile, error) {
	return pm.GetProfile(pm.currentProfile)
}

// ListProfiles 列出所有profiles(按名称排序)
func (pm *ProfileManager) ListProfiles() []string {
	names := make([]string, 0, len(pm.profiles))
	for name := range pm.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SaveProfile 保存profile
func (pm *ProfileManager) SaveProfile(profile *Profile) error {
	if profile.Name == "" {
		return fmt.Errorf("profile name is required")
	}
	if _, err := profile.NetworkID(); err != nil {
		return fmt.Errorf("profile %s: %w", profile.Name, err)
	}
	pm.applyDefaults(profile)

	data, err := jsonx.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	profilePath := filepath.Join(pm.configDir, "profiles", profile.Name+".json")
	if err := os.MkdirAll(filepath.Dir(profilePath), 0700); err != nil {
		return fmt.Errorf("create profiles dir: %w", err)
	}
	if err := os.WriteFile(profilePath, data, 0600); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}

	pm.profiles[profile.Name] = profile
	return nil
}

// SwitchProfile 切换profile
func (pm *ProfileManager) SwitchProfile(name string) error {
	if _, exists := pm.profiles[name]; !exists {
		return fmt.Errorf("profile not found: %s", name)
	}

	pm.currentProfile = name
	return pm.saveCurrentProfile()
}

// isJSONFile 检查是否是JSON文件
func isJSONFile(name string) bool {
	return filepath.Ext(name) == ".json"
}
