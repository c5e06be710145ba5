package inspector

import (
	"context"
	"errors"
	"fmt"

	"tx-inspector-sol/internal/idl"
	"tx-inspector-sol/internal/logic/domain"
	"tx-inspector-sol/internal/logic/ixdecoder"
	"tx-inspector-sol/internal/pkg/logger"
)

// ErrTransactionNotFound 表示指定签名在链上没有对应交易。
// 仅在内部流转；对外统一收敛为"无结果"。
var ErrTransactionNotFound = errors.New("transaction not found")

// TxFetcher 是外部账本客户端能力：按签名拉取一笔已确认交易。
// 实现方应请求 maxSupportedTransactionVersion=0 以兼容 v0 交易格式；
// 交易不存在时返回 (nil, nil)。
type TxFetcher interface {
	FetchTransaction(ctx context.Context, signature string) (*domain.RawTransaction, error)
}

// GetTransactionDetails 按签名拉取交易并以宽松模式解码全部指令（内置 IDL）。
//
// 这里是所有向上传播失败的唯一收口：未找到、拉取异常、账户解析异常
// 一律记日志并返回 nil，调用方只能观察到"有结果 / 无结果"。
// 失败原因通过 getTransactionDetails 的错误链在内部保持可检视。
func GetTransactionDetails(ctx context.Context, fetcher TxFetcher, signature string) []domain.DecodedInstruction {
	result, err := getTransactionDetails(ctx, fetcher, signature)
	if err != nil {
		logger.Warnf("[inspector] get transaction details failed: signature=%s err=%v", signature, err)
		return nil
	}
	return result
}

// getTransactionDetails 是带类型化错误的内部实现。
func getTransactionDetails(ctx context.Context, fetcher TxFetcher, signature string) ([]domain.DecodedInstruction, error) {
	if fetcher == nil {
		return nil, errors.New("no fetcher supplied")
	}

	tx, err := fetcher.FetchTransaction(ctx, signature)
	if err != nil {
		return nil, fmt.Errorf("fetch transaction: %w", err)
	}
	if tx == nil {
		return nil, fmt.Errorf("%w: signature=%s", ErrTransactionNotFound, signature)
	}

	return ixdecoder.DecodeAll(tx, idl.Bundled())
}
