package accountkeys

import (
	"errors"
	"fmt"

	"tx-inspector-sol/internal/types"
)

// ErrAccountKeyNotFound 表示给定索引在所有回退来源中均无对应账户。
var ErrAccountKeyNotFound = errors.New("account key not found")

// KeyAt 按层级回退策略解析账户索引，先命中者胜：
//  1. 合并账户表 AccountKeys
//  2. 静态账户表 StaticAccountKeys
//  3. 原始消息的账户列表
//
// 不同形态的交易（legacy / v0 / 合并降级结果）只会填充其中部分来源，
// 回退链让调用方无需关心视图的具体形态。
// 三者均未命中时返回 ErrAccountKeyNotFound，错误信息携带各来源的有效范围。
func (r *ResolvedKeys) KeyAt(index int) (types.Pubkey, error) {
	if index >= 0 {
		if index < len(r.AccountKeys) {
			return r.AccountKeys[index], nil
		}
		if index < len(r.StaticAccountKeys) {
			return r.StaticAccountKeys[index], nil
		}
		if r.original != nil && index < len(r.original.AccountKeys) {
			return r.original.AccountKeys[index], nil
		}
	}

	msgLen := 0
	if r.original != nil {
		msgLen = len(r.original.AccountKeys)
	}
	return types.Pubkey{}, fmt.Errorf("%w: index=%d merged=%d static=%d message=%d",
		ErrAccountKeyNotFound, index, len(r.AccountKeys), len(r.StaticAccountKeys), msgLen)
}
