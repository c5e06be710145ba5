package rpc

import (
	"context"
	"fmt"
	"time"

	"tx-inspector-sol/internal/logic/domain"

	"github.com/blocto/solana-go-sdk/client"
)

const defaultTimeout = 10 * time.Second

// Client 基于 solana-go-sdk 的交易拉取客户端，实现 inspector.TxFetcher。
type Client struct {
	rpc     *client.Client
	timeout time.Duration
}

// NewClient 创建 RPC 客户端。timeoutS <= 0 时使用默认超时。
func NewClient(endpoint string, timeoutS int) *Client {
	timeout := defaultTimeout
	if timeoutS > 0 {
		timeout = time.Duration(timeoutS) * time.Second
	}
	return &Client{
		rpc:     client.NewClient(endpoint),
		timeout: timeout,
	}
}

// FetchTransaction 按签名拉取一笔已确认交易并转换为内部结构。
// SDK 请求时声明兼容 v0 交易格式；链上不存在该签名时返回 (nil, nil)。
func (c *Client) FetchTransaction(ctx context.Context, signature string) (*domain.RawTransaction, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.rpc.GetTransaction(ctx, signature)
	if err != nil {
		return nil, fmt.Errorf("GetTransaction %s: %w", signature, err)
	}
	if resp == nil {
		return nil, nil
	}
	return convertTransaction(resp), nil
}
