package transport

import (
	"fmt"
	"strings"
	"time"

	"github.com/weisyn/burnwallet/client/core/keypair"
)

const (
	// MainnetBaseURL 主网API根地址
	MainnetBaseURL = "https://api.helium.io/v1"

	// TestnetBaseURL 测试网API根地址
	TestnetBaseURL = "https://testnet-api.helium.wtf/v1"

	// PendingTransactionsPath 待处理交易资源路径
	PendingTransactionsPath = "/pending_transactions"

	// DefaultTimeout 默认请求超时
	DefaultTimeout = 30 * time.Second
)

// ClientConfig 客户端配置
type ClientConfig struct {
	Network keypair.Network
	BaseURL string // 为空时按网络取默认地址
	Timeout time.Duration
}

// DefaultBaseURL 返回网络对应的默认API根地址
func DefaultBaseURL(network keypair.Network) (string, error) {
	switch network {
	case keypair.NetworkMainnet:
		return MainnetBaseURL, nil
	case keypair.NetworkTestnet:
		return TestnetBaseURL, nil
	default:
		return "", fmt.Errorf("no default api url for %s", network)
	}
}

// NewClient 按配置创建客户端
func NewClient(config ClientConfig) (Client, error) {
	baseURL := strings.TrimSpace(config.BaseURL)
	if baseURL == "" {
		var err error
		baseURL, err = DefaultBaseURL(config.Network)
		if err != nil {
			return nil, err
		}
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("invalid api url %q: scheme must be http or https", baseURL)
	}

	return NewRESTClient(baseURL, config.Timeout), nil
}

// PendingURL 待处理交易状态链接
// hash为空时返回不带哈希段的前缀
func PendingURL(baseURL, hash string) string {
	return strings.TrimRight(baseURL, "/") + PendingTransactionsPath + "/" + hash
}
