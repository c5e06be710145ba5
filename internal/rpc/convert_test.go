package rpc

import (
	"testing"

	"tx-inspector-sol/internal/consts"
	"tx-inspector-sol/internal/logic/domain"

	"github.com/blocto/solana-go-sdk/client"
	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/rpc"
	sdktypes "github.com/blocto/solana-go-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserAddr = "So11111111111111111111111111111111111111112"

// legacy 交易转换：消息标记为 legacy，账户与指令逐一映射
func TestConvertTransaction_Legacy(t *testing.T) {
	blockTime := int64(1_700_000_000)
	src := &client.Transaction{
		Slot:      12345,
		BlockTime: &blockTime,
		Transaction: sdktypes.Transaction{
			Message: sdktypes.Message{
				Version: sdktypes.MessageVersionLegacy,
				Accounts: []common.PublicKey{
					common.PublicKeyFromString(consts.PumpFunProgramStr),
					common.PublicKeyFromString(testUserAddr),
				},
				Instructions: []sdktypes.CompiledInstruction{
					{ProgramIDIndex: 0, Accounts: []int{1}, Data: []byte{1, 2, 3}},
				},
			},
		},
		Meta: &client.TransactionMeta{
			LogMessages: []string{"Program log: ok"},
		},
	}

	got := convertTransaction(src)
	require.NotNil(t, got)
	assert.Equal(t, uint64(12345), got.Slot)
	assert.Equal(t, &blockTime, got.BlockTime)

	require.Equal(t, domain.MessageLegacy, got.Message.Kind)
	require.Len(t, got.Message.AccountKeys, 2)
	assert.Equal(t, consts.PumpFunProgram, got.Message.AccountKeys[0])

	require.Len(t, got.Message.Instructions, 1)
	assert.Equal(t, 0, got.Message.Instructions[0].ProgramIDIndex)
	assert.Equal(t, []byte{1, 2, 3}, got.Message.Instructions[0].Data)

	require.NotNil(t, got.Meta)
	assert.Nil(t, got.Meta.LoadedAddresses)
	assert.Equal(t, []string{"Program log: ok"}, got.Meta.LogMessages)
}

// v0 交易转换：查找表地址解码进 LoadedAddresses，inner 指令按组映射
func TestConvertTransaction_V0(t *testing.T) {
	src := &client.Transaction{
		Transaction: sdktypes.Transaction{
			Message: sdktypes.Message{
				Version: sdktypes.MessageVersionV0,
				Accounts: []common.PublicKey{
					common.PublicKeyFromString(consts.PumpFunProgramStr),
				},
			},
		},
		Meta: &client.TransactionMeta{
			LoadedAddresses: rpc.TransactionLoadedAddresses{
				Writable: []string{testUserAddr},
				Readonly: []string{consts.TokenProgramStr},
			},
			InnerInstructions: []client.InnerInstruction{
				{
					Index: 2,
					Instructions: []sdktypes.CompiledInstruction{
						{ProgramIDIndex: 0, Data: []byte{9}},
					},
				},
			},
		},
	}

	got := convertTransaction(src)
	require.Equal(t, domain.MessageV0, got.Message.Kind)

	require.NotNil(t, got.Meta.LoadedAddresses)
	require.Len(t, got.Meta.LoadedAddresses.Writable, 1)
	assert.Equal(t, testUserAddr, got.Meta.LoadedAddresses.Writable[0].String())
	require.Len(t, got.Meta.LoadedAddresses.Readonly, 1)
	assert.Equal(t, consts.TokenProgram, got.Meta.LoadedAddresses.Readonly[0])

	require.Len(t, got.Meta.InnerInstructions, 1)
	assert.Equal(t, 2, got.Meta.InnerInstructions[0].Index)
	require.Len(t, got.Meta.InnerInstructions[0].Instructions, 1)
}

// 查找表地址非法：整组丢弃，转换本身不报错
func TestConvertMeta_BadLoadedAddresses(t *testing.T) {
	meta := &client.TransactionMeta{
		LoadedAddresses: rpc.TransactionLoadedAddresses{
			Writable: []string{"not-a-pubkey-%%%"},
		},
	}

	got := convertMeta(meta)
	require.NotNil(t, got)
	assert.Nil(t, got.LoadedAddresses)
}

// meta 缺失：原样传递 nil
func TestConvertMeta_Nil(t *testing.T) {
	assert.Nil(t, convertMeta(nil))
}
