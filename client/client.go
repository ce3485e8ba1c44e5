// Package client 燃烧钱包的库入口
//
// 供其他 Go 程序直接调用,无需经过 CLI:
//
//	c, err := client.New(keypair.NetworkMainnet)
//	result, err := c.Burn(ctx, burn.Request{Signer: kp, Payee: addr, Amount: amount})
package client

import (
	"context"
	"time"

	"github.com/weisyn/burnwallet/client/core/builder"
	"github.com/weisyn/burnwallet/client/core/burn"
	"github.com/weisyn/burnwallet/client/core/keypair"
	"github.com/weisyn/burnwallet/client/core/transport"
)

// Client 燃烧钱包客户端 - 统一的客户端入口
type Client struct {
	transport transport.Client
	policy    builder.Policy
}

// New 创建指定网络的客户端,使用该网络的默认 API 地址
func New(network keypair.Network) (*Client, error) {
	return NewWithTimeout(network, "", transport.DefaultTimeout)
}

// NewWithTimeout 创建带自定义 API 地址与超时的客户端
// baseURL 为空时按网络取默认值
func NewWithTimeout(network keypair.Network, baseURL string, timeout time.Duration) (*Client, error) {
	t, err := transport.NewClient(transport.ClientConfig{
		Network: network,
		BaseURL: baseURL,
		Timeout: timeout,
	})
	if err != nil {
		return nil, err
	}
	return NewWithTransport(t), nil
}

// NewWithTransport 使用自定义 transport 创建客户端
func NewWithTransport(t transport.Client) *Client {
	return &Client{transport: t}
}

// WithPolicy 设置构建策略
func (c *Client) WithPolicy(policy builder.Policy) *Client {
	c.policy = policy
	return c
}

// Transport 获取底层的 transport 客户端
func (c *Client) Transport() transport.Client {
	return c.transport
}

// Close 释放底层连接
func (c *Client) Close() error {
	return c.transport.Close()
}

// === 便捷方法：账户与链参数 ===

// GetAccount 查询账户
func (c *Client) GetAccount(ctx context.Context, address string) (*transport.Account, error) {
	return c.transport.GetAccount(ctx, address)
}

// GetChainVars 查询链参数
func (c *Client) GetChainVars(ctx context.Context) (*transport.ChainVars, error) {
	return c.transport.GetChainVars(ctx)
}

// === 便捷方法：燃烧 ===

// Burn 构建、签名并按 req.Commit 决定是否提交燃烧交易
func (c *Client) Burn(ctx context.Context, req burn.Request) (*burn.Result, error) {
	return burn.NewService(c.transport, c.policy).Execute(ctx, req)
}

// PendingURL 交易状态链接
func (c *Client) PendingURL(hash string) string {
	return transport.PendingURL(c.transport.BaseURL(), hash)
}
