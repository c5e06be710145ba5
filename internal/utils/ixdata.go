package utils

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

// ErrUnrecognizedFormat 表示指令数据既不是字节序列，也不是可解码的字符串。
var ErrUnrecognizedFormat = errors.New("unrecognized instruction data format")

// NormalizeInstructionData 将任意表示的指令数据规整为规范字节切片。
// 支持四种形态：
//   - []byte：直接拷贝
//   - []int：按字节值数组拷贝（越界值视为非法输入）
//   - string：优先按 base58 解码，失败后回退 base64
//
// 其余类型返回 ErrUnrecognizedFormat。纯函数，返回的切片为独立拷贝。
func NormalizeInstructionData(data any) ([]byte, error) {
	switch v := data.(type) {
	case []byte:
		buf := make([]byte, len(v))
		copy(buf, v)
		return buf, nil

	case []int:
		buf := make([]byte, len(v))
		for i, b := range v {
			if b < 0 || b > 0xFF {
				return nil, fmt.Errorf("%w: byte value %d out of range at index %d", ErrUnrecognizedFormat, b, i)
			}
			buf[i] = byte(b)
		}
		return buf, nil

	case string:
		// base58 优先，与链上指令数据的常见编码一致；解码失败不抛出，回退 base64
		if buf, err := base58.Decode(v); err == nil {
			return buf, nil
		}
		buf, err := base64.StdEncoding.DecodeString(v)
		if err != nil {
			return nil, fmt.Errorf("%w: string is neither base58 nor base64", ErrUnrecognizedFormat)
		}
		return buf, nil

	default:
		return nil, fmt.Errorf("%w: %T", ErrUnrecognizedFormat, data)
	}
}
