package domain

import "tx-inspector-sol/internal/types"

// CompiledInstruction 表示消息中的一条已编译指令（可为主指令或 inner 指令）。
type CompiledInstruction struct {
	ProgramIDIndex int   // 被调用程序在合并账户表中的索引
	Accounts       []int // 指令涉及账户在合并账户表中的索引，保持原始顺序
	// Data 为指令数据的原始表示。不同来源形态不一：可能是 []byte（RPC SDK
	// 已解码）、[]int（字节值数组）或 base58/base64 字符串，
	// 统一交由 utils.NormalizeInstructionData 规整。
	Data any
}

// InnerInstructionGroup 表示某条主指令执行期间触发的 inner 指令集合（CPI）。
// Index 指向所属主指令在消息中的位置。
type InnerInstructionGroup struct {
	Index        int
	Instructions []CompiledInstruction
}

// LoadedAddresses 表示通过地址查找表载入的账户。
// 参与索引时 writable 恒在 readonly 之前。
type LoadedAddresses struct {
	Writable []types.Pubkey
	Readonly []types.Pubkey
}

// TransactionMeta 表示交易执行元数据中本模块关心的子集。
type TransactionMeta struct {
	Err               any                     // 执行错误，nil 表示成功
	LogMessages       []string                // 程序日志
	LoadedAddresses   *LoadedAddresses        // 查找表账户，legacy 交易为 nil
	InnerInstructions []InnerInstructionGroup // inner 指令，按主指令索引分组
}

// RawTransaction 表示从账本节点拉取到的一笔已确认交易。
// 所有派生结构（账户索引视图、解码结果）均逐笔构建、用完即弃，不跨交易缓存。
type RawTransaction struct {
	Slot      uint64
	BlockTime *int64
	Message   *Message
	Meta      *TransactionMeta
}
