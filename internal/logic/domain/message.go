package domain

import "tx-inspector-sol/internal/types"

// MessageKind 标识消息格式：legacy（无地址查找表）或 v0（支持地址查找表）。
// 在构造时一次性确定，后续逻辑只依赖该标记，不做运行期能力探测。
type MessageKind uint8

const (
	MessageLegacy MessageKind = iota
	MessageV0
)

// Message 表示交易消息体，是 legacy / v0 两种格式的标签联合。
// legacy 消息的 AccountKeys 即完整账户列表；
// v0 消息的 AccountKeys 仅包含静态账户，查找表部分由 meta.LoadedAddresses 提供，
// 合并工作由 accountkeys.Resolve 完成。
type Message struct {
	Kind         MessageKind
	AccountKeys  []types.Pubkey
	Instructions []CompiledInstruction
}

// NewLegacyMessage 构造 legacy 格式消息，accountKeys 为完整账户列表。
func NewLegacyMessage(accountKeys []types.Pubkey, instructions []CompiledInstruction) *Message {
	return &Message{
		Kind:         MessageLegacy,
		AccountKeys:  accountKeys,
		Instructions: instructions,
	}
}

// NewV0Message 构造 v0 格式消息，staticKeys 仅为消息内静态声明的账户。
func NewV0Message(staticKeys []types.Pubkey, instructions []CompiledInstruction) *Message {
	return &Message{
		Kind:         MessageV0,
		AccountKeys:  staticKeys,
		Instructions: instructions,
	}
}
