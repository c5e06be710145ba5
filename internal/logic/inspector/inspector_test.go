package inspector

import (
	"context"
	"errors"
	"testing"

	"tx-inspector-sol/internal/consts"
	"tx-inspector-sol/internal/idl"
	"tx-inspector-sol/internal/logic/domain"
	"tx-inspector-sol/internal/types"

	"github.com/near/borsh-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFetcher 以函数形式实现 TxFetcher
type fakeFetcher func(ctx context.Context, signature string) (*domain.RawTransaction, error)

func (f fakeFetcher) FetchTransaction(ctx context.Context, signature string) (*domain.RawTransaction, error) {
	return f(ctx, signature)
}

// buildBuyTx 构造一笔包含内置 IDL buy 指令的 legacy 交易
func buildBuyTx(t *testing.T) *domain.RawTransaction {
	t.Helper()
	payload, err := borsh.Serialize(idl.BuyArgs{Amount: 100, MaxSolCost: 1_000})
	require.NoError(t, err)
	data := append([]byte{102, 6, 61, 18, 1, 218, 235, 234}, payload...)

	var user types.Pubkey
	user[0] = 0x01
	keys := []types.Pubkey{consts.PumpFunProgram, user}
	return &domain.RawTransaction{
		Message: domain.NewLegacyMessage(keys, []domain.CompiledInstruction{
			{ProgramIDIndex: 0, Accounts: []int{1}, Data: data},
		}),
		Meta: &domain.TransactionMeta{},
	}
}

// 正常路径：拉取成功后返回宽松模式的解码序列
func TestGetTransactionDetails(t *testing.T) {
	fetcher := fakeFetcher(func(ctx context.Context, signature string) (*domain.RawTransaction, error) {
		assert.Equal(t, "sig-1", signature)
		return buildBuyTx(t), nil
	})

	result := GetTransactionDetails(context.Background(), fetcher, "sig-1")
	require.Len(t, result, 1)
	assert.Equal(t, "buy", result[0].Name)
	assert.Equal(t, consts.PumpFunProgramStr, result[0].ProgramID)

	args, ok := result[0].Args.(*idl.BuyArgs)
	require.True(t, ok)
	assert.Equal(t, uint64(100), args.Amount)
}

// 交易不存在：返回 nil 且不 panic
func TestGetTransactionDetails_NotFound(t *testing.T) {
	fetcher := fakeFetcher(func(ctx context.Context, signature string) (*domain.RawTransaction, error) {
		return nil, nil
	})

	result := GetTransactionDetails(context.Background(), fetcher, "missing")
	assert.Nil(t, result)

	// 内部错误链应保留可判定的失败原因
	_, err := getTransactionDetails(context.Background(), fetcher, "missing")
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

// 拉取失败：吞掉错误，对外仅表现为无结果
func TestGetTransactionDetails_FetchError(t *testing.T) {
	fetchErr := errors.New("rpc unavailable")
	fetcher := fakeFetcher(func(ctx context.Context, signature string) (*domain.RawTransaction, error) {
		return nil, fetchErr
	})

	result := GetTransactionDetails(context.Background(), fetcher, "sig-x")
	assert.Nil(t, result)

	_, err := getTransactionDetails(context.Background(), fetcher, "sig-x")
	assert.ErrorIs(t, err, fetchErr)
}

// 未提供客户端能力：立即返回 nil
func TestGetTransactionDetails_NilFetcher(t *testing.T) {
	result := GetTransactionDetails(context.Background(), nil, "sig-y")
	assert.Nil(t, result)
}
