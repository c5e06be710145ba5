package consts

import (
	"tx-inspector-sol/internal/types"
)

// 公钥形式的地址常量（types.Pubkey），用于链上比对等场景。
var (
	SystemProgram  types.Pubkey
	TokenProgram   types.Pubkey
	PumpFunProgram types.Pubkey
)

// init 自动将 base58 字符串地址转换为 types.Pubkey
func init() {
	SystemProgram = types.PubkeyFromBase58(SystemProgramStr)
	TokenProgram = types.PubkeyFromBase58(TokenProgramStr)
	PumpFunProgram = types.PubkeyFromBase58(PumpFunProgramStr)
}
