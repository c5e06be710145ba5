package idl

import (
	_ "embed"

	"tx-inspector-sol/internal/types"
)

// 模块内置的 Pump.fun bonding curve 程序 IDL。
//
//go:embed pump_fun.json
var pumpFunJSON []byte

// CreateArgs 对应 create 指令参数（borsh 布局，字段顺序即序列化顺序）。
type CreateArgs struct {
	Name    string
	Symbol  string
	URI     string
	Creator types.Pubkey
}

// BuyArgs 对应 buy 指令参数。
type BuyArgs struct {
	Amount     uint64 // 买入的 token 数量（最小单位）
	MaxSolCost uint64 // 允许支付的 SOL 上限（lamports）
}

// SellArgs 对应 sell 指令参数。
type SellArgs struct {
	Amount       uint64 // 卖出的 token 数量（最小单位）
	MinSolOutput uint64 // 要求收到的 SOL 下限（lamports）
}

var bundled *Schema

// Bundled 返回模块内置的解码器，进程内共享同一实例（只读，无并发问题）。
func Bundled() *Schema {
	return bundled
}

func init() {
	doc, err := Parse(pumpFunJSON)
	if err != nil {
		panic(err)
	}
	schema, err := NewSchema(doc, map[string]ArgsFactory{
		"create": func() any { return &CreateArgs{} },
		"buy":    func() any { return &BuyArgs{} },
		"sell":   func() any { return &SellArgs{} },
	})
	if err != nil {
		panic(err)
	}
	bundled = schema
}
