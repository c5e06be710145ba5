package domain

// DecodedInstruction 表示一条指令的解码结果，是本模块对外的输出单元。
//
// Index 的语义：主指令为其在消息中的位置；inner 指令为其所属主指令的位置
// （而非 inner 自身的序号），便于消费方把 CPI 归并到发起它的主指令下。
type DecodedInstruction struct {
	Name  string `json:"name"`            // IDL 中的指令名，未识别时为 "unknown"
	Args  any    `json:"args"`            // 解码出的参数结构，未识别时为 nil
	Index int    `json:"index"`           // 见上方语义说明
	Inner bool   `json:"inner,omitempty"` // 仅 inner 指令为 true

	// 以下字段仅宽松模式填充
	ProgramID string   `json:"programId,omitempty"` // 发起程序地址（base58）
	RawData   string   `json:"rawData,omitempty"`   // 规整后的指令数据（base58）
	Accounts  []string `json:"accounts,omitempty"`  // 涉及账户（base58），无法解析的索引以 unknown_<index> 占位
}
