package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/weisyn/burnwallet/client/pkg/jsonx"
	"github.com/weisyn/burnwallet/internal/log"
)

// maxErrorBody 错误响应体最多保留的字节数
const maxErrorBody = 512

// HTTPError 节点返回非2xx状态码
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Body)
}

// RESTClient 节点REST API客户端
type RESTClient struct {
	baseURL    string
	httpClient *http.Client
	logger     log.Logger
}

var _ Client = (*RESTClient)(nil)

// NewRESTClient 创建REST客户端
func NewRESTClient(baseURL string, timeout time.Duration) *RESTClient {
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &RESTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		logger: log.With("module", "transport"),
	}
}

// BaseURL 节点API根地址
func (c *RESTClient) BaseURL() string {
	return c.baseURL
}

// Close 释放空闲连接
func (c *RESTClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// get 发送GET请求,解码 {"data": ...} 中的 data
func (c *RESTClient) get(ctx context.Context, path string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.do(req, result)
}

// post 发送JSON POST请求,解码 {"data": ...} 中的 data
func (c *RESTClient) post(ctx context.Context, path string, body interface{}, result interface{}) error {
	data, err := jsonx.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, result)
}

func (c *RESTClient) do(req *http.Request, result interface{}) error {
	req.Header.Set("Accept", "application/json")
	c.logger.Debugf("%s %s", req.Method, req.URL.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warnf("Failed to close response body: %v", err)
		}
	}()

	// 检查状态码
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &HTTPError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if result == nil {
		return nil
	}

	var envelope dataEnvelope
	if err := jsonx.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(envelope.Data) == 0 || bytes.Equal(envelope.Data, []byte("null")) {
		return fmt.Errorf("decode response: missing data")
	}
	if err := jsonx.Unmarshal(envelope.Data, result); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}

// ===== 接口实现 =====

// GetAccount GET /accounts/{address}
func (c *RESTClient) GetAccount(ctx context.Context, address string) (*Account, error) {
	var raw struct {
		Address          string     `json:"address"`
		Balance          flexUint64 `json:"balance"`
		DCBalance        flexUint64 `json:"dc_balance"`
		Nonce            flexUint64 `json:"nonce"`
		SpeculativeNonce flexUint64 `json:"speculative_nonce"`
	}
	if err := c.get(ctx, "/accounts/"+url.PathEscape(address), &raw); err != nil {
		return nil, err
	}

	return &Account{
		Address:          raw.Address,
		Balance:          uint64(raw.Balance),
		DCBalance:        uint64(raw.DCBalance),
		Nonce:            uint64(raw.Nonce),
		SpeculativeNonce: uint64(raw.SpeculativeNonce),
	}, nil
}

// GetChainVars GET /vars
func (c *RESTClient) GetChainVars(ctx context.Context) (*ChainVars, error) {
	var raw struct {
		TxnFees          bool       `json:"txn_fees"`
		TxnFeeMultiplier flexUint64 `json:"txn_fee_multiplier"`
		DCPayloadSize    flexUint64 `json:"dc_payload_size"`
	}
	if err := c.get(ctx, "/vars", &raw); err != nil {
		return nil, err
	}

	return &ChainVars{
		TxnFees:          raw.TxnFees,
		TxnFeeMultiplier: uint64(raw.TxnFeeMultiplier),
		DCPayloadSize:    uint64(raw.DCPayloadSize),
	}, nil
}

// SubmitTxn POST /pending_transactions
func (c *RESTClient) SubmitTxn(ctx context.Context, txnB64 string) (*PendingStatus, error) {
	var raw struct {
		Hash   string `json:"hash"`
		Status string `json:"status"`
	}
	body := map[string]string{"txn": txnB64}
	if err := c.post(ctx, PendingTransactionsPath, body, &raw); err != nil {
		return nil, err
	}
	if raw.Hash == "" {
		return nil, fmt.Errorf("decode response: empty transaction hash")
	}

	state, err := ParsePendingState(raw.Status)
	if err != nil {
		return nil, err
	}
	return &PendingStatus{Hash: raw.Hash, State: state}, nil
}
