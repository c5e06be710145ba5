package accountkeys

import (
	"fmt"

	"tx-inspector-sol/internal/logic/domain"
	"tx-inspector-sol/internal/types"
)

// LookupKeys 表示从地址查找表解析出的账户，按 writable / readonly 分组。
type LookupKeys struct {
	Writable []types.Pubkey
	Readonly []types.Pubkey
}

// ResolvedKeys 是针对单笔交易构建的账户索引视图，构造后不再修改。
//
// 合并顺序是索引空间不变量：static 在前，随后是查找表 writable，最后 readonly；
// 指令中的账户索引必须基于同一顺序解析。
// 视图仅对派生它的 (Message, Meta) 有效：每笔交易都应重新构建（构建开销极低），
// 禁止跨交易复用，避免查找表内容变化导致的脏账户问题。
type ResolvedKeys struct {
	StaticAccountKeys []types.Pubkey // 消息内静态声明的账户（legacy 为完整列表）
	LookupKeys        *LookupKeys    // 查找表账户；legacy 或降级结果为 nil
	AccountKeys       []types.Pubkey // 合并后的完整账户表；legacy 不生成
	Warnings          []string       // 构建过程中的降级诊断，由调用方决定如何上报

	original *domain.Message // 仅作为索引兜底，绝不作为主数据源，绝不修改
}

// Resolve 根据消息与交易元数据构建账户索引视图。
//
// v0 消息：合并静态账户与查找表账户；合并失败时降级为 legacy 形态
// （仅静态账户）并记录告警，绝不向外抛错。
// legacy 消息：直接返回静态账户视图。legacy 没有查找表，无需生成合并表。
func Resolve(msg *domain.Message, meta *domain.TransactionMeta) ResolvedKeys {
	if msg == nil {
		return ResolvedKeys{Warnings: []string{"resolve: nil message"}}
	}

	if msg.Kind == domain.MessageV0 {
		merged, lookups, err := mergeLookupKeys(msg, meta)
		if err != nil {
			return ResolvedKeys{
				StaticAccountKeys: msg.AccountKeys,
				original:          msg,
				Warnings:          []string{fmt.Sprintf("resolve: lookup merge degraded to static keys: %v", err)},
			}
		}
		return ResolvedKeys{
			StaticAccountKeys: msg.AccountKeys,
			LookupKeys:        lookups,
			AccountKeys:       merged,
			original:          msg,
		}
	}

	return ResolvedKeys{
		StaticAccountKeys: msg.AccountKeys,
		original:          msg,
	}
}

// mergeLookupKeys 构造 v0 消息的合并账户表。
// meta 或 LoadedAddresses 缺失时按空查找表处理。
// 预计算总长度一次性分配，顺序写入：static → writable → readonly。
func mergeLookupKeys(msg *domain.Message, meta *domain.TransactionMeta) (_ []types.Pubkey, _ *LookupKeys, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("merge panic: %v", r)
		}
	}()

	lookups := &LookupKeys{}
	if meta != nil && meta.LoadedAddresses != nil {
		lookups.Writable = meta.LoadedAddresses.Writable
		lookups.Readonly = meta.LoadedAddresses.Readonly
	}

	total := len(msg.AccountKeys) + len(lookups.Writable) + len(lookups.Readonly)
	merged := make([]types.Pubkey, 0, total)
	merged = append(merged, msg.AccountKeys...)
	merged = append(merged, lookups.Writable...)
	merged = append(merged, lookups.Readonly...)
	return merged, lookups, nil
}
