package ixdecoder

import (
	"fmt"
	"runtime/debug"

	"tx-inspector-sol/internal/idl"
	"tx-inspector-sol/internal/logic/accountkeys"
	"tx-inspector-sol/internal/logic/domain"
	"tx-inspector-sol/internal/pkg/logger"
	"tx-inspector-sol/internal/types"
	"tx-inspector-sol/internal/utils"

	"github.com/mr-tron/base58"
)

// Schema 是指令数据解码能力的最小接口，由 idl.Schema 实现。
type Schema interface {
	ProgramID() types.Pubkey
	Decode(data []byte) (*idl.Decoded, error)
}

// DecodeForProgram 以严格模式解码交易：只保留由目标程序发起、且数据可被
// schema 识别的指令，其余一律静默跳过（不报错、不产出记录）。
//
// 遍历顺序：先主指令（按编译顺序），再各 inner 指令组（按原始顺序）。
// inner 指令记录其所属主指令的索引。
// 仅两类失败向上传播：指令 programIdIndex 无法解析（无合理缺省值），
// 以及指令数据格式完全无法规整。
func DecodeForProgram(tx *domain.RawTransaction, schema Schema) ([]domain.DecodedInstruction, error) {
	if tx == nil || tx.Message == nil {
		return nil, fmt.Errorf("decode: nil transaction or message")
	}

	keys := accountkeys.Resolve(tx.Message, tx.Meta)
	reportWarnings(&keys)
	target := schema.ProgramID()

	var result []domain.DecodedInstruction
	for i, ix := range tx.Message.Instructions {
		programID, err := keys.KeyAt(ix.ProgramIDIndex)
		if err != nil {
			return nil, fmt.Errorf("instruction %d: %w", i, err)
		}
		if programID != target {
			continue
		}
		data, err := utils.NormalizeInstructionData(ix.Data)
		if err != nil {
			return nil, fmt.Errorf("instruction %d: %w", i, err)
		}
		decoded, ok := tryDecode(schema, data)
		if !ok {
			continue
		}
		result = append(result, domain.DecodedInstruction{
			Name:  decoded.Name,
			Args:  decoded.Args,
			Index: i,
		})
	}

	if tx.Meta == nil {
		return result, nil
	}
	for _, group := range tx.Meta.InnerInstructions {
		for _, ix := range group.Instructions {
			programID, err := keys.KeyAt(ix.ProgramIDIndex)
			if err != nil {
				return nil, fmt.Errorf("inner instruction group %d: %w", group.Index, err)
			}
			if programID != target {
				continue
			}
			data, err := utils.NormalizeInstructionData(ix.Data)
			if err != nil {
				return nil, fmt.Errorf("inner instruction group %d: %w", group.Index, err)
			}
			decoded, ok := tryDecode(schema, data)
			if !ok {
				continue
			}
			result = append(result, domain.DecodedInstruction{
				Name:  decoded.Name,
				Args:  decoded.Args,
				Index: group.Index, // 指向所属主指令，而非 inner 自身位置
				Inner: true,
			})
		}
	}
	return result, nil
}

// DecodeAll 以宽松模式解码交易：遍历到的每条指令都产出一条记录，
// 无法识别的指令以 name="unknown" 保留，绝不丢弃。
//
// 失败隔离策略：单个账户索引解析失败以 "unknown_<index>" 占位；
// 数据规整或 schema 解码失败退化为 unknown 记录；
// 指令 programIdIndex 解析失败无合理缺省值，直接向上传播。
func DecodeAll(tx *domain.RawTransaction, schema Schema) ([]domain.DecodedInstruction, error) {
	if tx == nil || tx.Message == nil {
		return nil, fmt.Errorf("decode: nil transaction or message")
	}

	keys := accountkeys.Resolve(tx.Message, tx.Meta)
	reportWarnings(&keys)

	result := make([]domain.DecodedInstruction, 0, len(tx.Message.Instructions))
	for i, ix := range tx.Message.Instructions {
		record, err := decodeAny(&keys, schema, ix, i, false)
		if err != nil {
			return nil, fmt.Errorf("instruction %d: %w", i, err)
		}
		result = append(result, record)
	}

	if tx.Meta == nil {
		return result, nil
	}
	for _, group := range tx.Meta.InnerInstructions {
		for _, ix := range group.Instructions {
			record, err := decodeAny(&keys, schema, ix, group.Index, true)
			if err != nil {
				return nil, fmt.Errorf("inner instruction group %d: %w", group.Index, err)
			}
			result = append(result, record)
		}
	}
	return result, nil
}

// decodeAny 构造单条指令的宽松模式记录。
func decodeAny(
	keys *accountkeys.ResolvedKeys,
	schema Schema,
	ix domain.CompiledInstruction,
	index int,
	inner bool,
) (domain.DecodedInstruction, error) {
	programID, err := keys.KeyAt(ix.ProgramIDIndex)
	if err != nil {
		return domain.DecodedInstruction{}, err
	}

	accounts := make([]string, 0, len(ix.Accounts))
	for _, accIdx := range ix.Accounts {
		key, err := keys.KeyAt(accIdx)
		if err != nil {
			// 单个账户缺失不中断整条指令，以占位符标记后继续
			accounts = append(accounts, fmt.Sprintf("unknown_%d", accIdx))
			continue
		}
		accounts = append(accounts, key.String())
	}

	record := domain.DecodedInstruction{
		Name:      "unknown",
		Index:     index,
		Inner:     inner,
		ProgramID: programID.String(),
		Accounts:  accounts,
	}

	data, err := utils.NormalizeInstructionData(ix.Data)
	if err != nil {
		// 数据形态无法规整时仍保留记录本身，仅缺失 rawData / args
		return record, nil
	}
	record.RawData = base58.Encode(data)

	if decoded, ok := tryDecode(schema, data); ok {
		record.Name = decoded.Name
		record.Args = decoded.Args
	}
	return record, nil
}

// tryDecode 尝试 schema 解码；任何失败（含 panic）都视为未命中。
func tryDecode(schema Schema, data []byte) (decoded *idl.Decoded, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("[ixdecoder] decode panic: %v\nstack: %s", r, debug.Stack())
			decoded, ok = nil, false
		}
	}()

	d, err := schema.Decode(data)
	if err != nil || d == nil {
		return nil, false
	}
	return d, true
}

// reportWarnings 上报账户索引视图构建期间的降级告警。
func reportWarnings(keys *accountkeys.ResolvedKeys) {
	for _, w := range keys.Warnings {
		logger.Warnf("[ixdecoder] %s", w)
	}
}
