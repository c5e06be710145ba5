package rpc

import (
	"tx-inspector-sol/internal/logic/domain"
	"tx-inspector-sol/internal/pkg/logger"
	"tx-inspector-sol/internal/types"

	"github.com/blocto/solana-go-sdk/client"
	sdktypes "github.com/blocto/solana-go-sdk/types"
)

// convertTransaction 将 SDK 交易结构转换为内部 RawTransaction。
// 消息格式（legacy / v0）在此一次性判定，下游不再做形态探测。
func convertTransaction(tx *client.Transaction) *domain.RawTransaction {
	staticKeys := make([]types.Pubkey, 0, len(tx.Transaction.Message.Accounts))
	for _, pk := range tx.Transaction.Message.Accounts {
		staticKeys = append(staticKeys, types.Pubkey(pk))
	}
	instructions := convertInstructions(tx.Transaction.Message.Instructions)

	var msg *domain.Message
	if tx.Transaction.Message.Version == sdktypes.MessageVersionLegacy {
		msg = domain.NewLegacyMessage(staticKeys, instructions)
	} else {
		msg = domain.NewV0Message(staticKeys, instructions)
	}

	return &domain.RawTransaction{
		Slot:      tx.Slot,
		BlockTime: tx.BlockTime,
		Message:   msg,
		Meta:      convertMeta(tx.Meta),
	}
}

// convertMeta 转换交易元数据中本模块关心的子集。
// 查找表地址非法（解码失败）时放弃整组并告警，
// 交由账户解析侧的回退链按降级形态处理。
func convertMeta(meta *client.TransactionMeta) *domain.TransactionMeta {
	if meta == nil {
		return nil
	}

	out := &domain.TransactionMeta{
		Err:         meta.Err,
		LogMessages: meta.LogMessages,
	}

	writable, wErr := types.TryPubkeysFromBase58(meta.LoadedAddresses.Writable)
	readonly, rErr := types.TryPubkeysFromBase58(meta.LoadedAddresses.Readonly)
	switch {
	case wErr != nil || rErr != nil:
		logger.Warnf("[rpc] invalid loaded addresses dropped: writableErr=%v readonlyErr=%v", wErr, rErr)
	case len(writable)+len(readonly) > 0:
		out.LoadedAddresses = &domain.LoadedAddresses{Writable: writable, Readonly: readonly}
	}

	for _, group := range meta.InnerInstructions {
		out.InnerInstructions = append(out.InnerInstructions, domain.InnerInstructionGroup{
			Index:        int(group.Index),
			Instructions: convertInstructions(group.Instructions),
		})
	}
	return out
}

func convertInstructions(list []sdktypes.CompiledInstruction) []domain.CompiledInstruction {
	out := make([]domain.CompiledInstruction, 0, len(list))
	for _, ins := range list {
		out = append(out, domain.CompiledInstruction{
			ProgramIDIndex: ins.ProgramIDIndex,
			Accounts:       ins.Accounts,
			// SDK 已将指令数据解码为字节；其余形态由 Normalizer 兜底
			Data: ins.Data,
		})
	}
	return out
}
