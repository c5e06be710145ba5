package idl

import (
	"errors"
	"fmt"

	"tx-inspector-sol/internal/types"

	"github.com/near/borsh-go"
)

// ErrNoMatch 表示数据与 IDL 中任何指令的判别码都不匹配。
var ErrNoMatch = errors.New("no matching instruction in idl")

// Decoded 表示一次成功的指令数据解码结果。
type Decoded struct {
	Name string
	Args any
}

// ArgsFactory 返回某条指令参数的可反序列化载体（指向结构体的指针）。
type ArgsFactory func() any

// Schema 是由 IDL 文档驱动的指令数据解码器。
// 以数据前 8 字节的判别码路由到对应指令，参数部分使用 borsh 反序列化。
type Schema struct {
	programID types.Pubkey
	name      string
	byDisc    map[[8]byte]schemaEntry
}

type schemaEntry struct {
	name    string
	newArgs ArgsFactory
}

// NewSchema 基于 IDL 文档与参数结构注册表构建解码器。
// argTypes 以指令名为键；未注册参数结构的指令仍可按判别码识别，Args 返回 nil。
func NewSchema(doc *IDL, argTypes map[string]ArgsFactory) (*Schema, error) {
	programID, err := types.TryPubkeyFromBase58(doc.Address)
	if err != nil {
		return nil, fmt.Errorf("idl address: %w", err)
	}

	s := &Schema{
		programID: programID,
		name:      doc.Metadata.Name,
		byDisc:    make(map[[8]byte]schemaEntry, len(doc.Instructions)),
	}
	for _, ins := range doc.Instructions {
		if len(ins.Discriminator) != 8 {
			return nil, fmt.Errorf("instruction %q: discriminator length %d, want 8", ins.Name, len(ins.Discriminator))
		}
		var disc [8]byte
		for i, b := range ins.Discriminator {
			if b < 0 || b > 0xFF {
				return nil, fmt.Errorf("instruction %q: discriminator byte %d out of range", ins.Name, b)
			}
			disc[i] = byte(b)
		}
		s.byDisc[disc] = schemaEntry{name: ins.Name, newArgs: argTypes[ins.Name]}
	}
	return s, nil
}

// ProgramID 返回该 IDL 所属程序的地址。
func (s *Schema) ProgramID() types.Pubkey {
	return s.programID
}

// Name 返回 IDL 元数据中的程序名。
func (s *Schema) Name() string {
	return s.name
}

// Decode 尝试按判别码识别指令并反序列化参数。
// 数据过短或判别码未注册时返回 ErrNoMatch；borsh 反序列化失败时原样返回错误。
func (s *Schema) Decode(data []byte) (*Decoded, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("%w: data too short (%d bytes)", ErrNoMatch, len(data))
	}

	var disc [8]byte
	copy(disc[:], data[:8])
	e, ok := s.byDisc[disc]
	if !ok {
		return nil, ErrNoMatch
	}
	if e.newArgs == nil {
		return &Decoded{Name: e.name}, nil
	}

	args := e.newArgs()
	if err := borsh.Deserialize(args, data[8:]); err != nil {
		return nil, fmt.Errorf("decode %s args: %w", e.name, err)
	}
	return &Decoded{Name: e.name, Args: args}, nil
}
