package idl

import (
	"encoding/json"
	"fmt"
)

// IDL 表示 Anchor 风格的接口定义文档，描述程序地址、指令名与参数布局。
type IDL struct {
	Address  string `json:"address"`
	Metadata struct {
		Name    string `json:"name"`
		Version string `json:"version"`
		Spec    string `json:"spec"`
	} `json:"metadata"`
	Instructions []Instruction `json:"instructions"`
}

// Instruction 表示 IDL 中的一条指令定义。
type Instruction struct {
	Name          string    `json:"name"`
	Discriminator []int     `json:"discriminator"` // 8 字节判别码，JSON 中为数字数组
	Accounts      []Account `json:"accounts"`
	Args          []Arg     `json:"args"`
}

// Account 表示指令定义中的一个命名账户位。
type Account struct {
	Name     string `json:"name"`
	Writable bool   `json:"writable,omitempty"`
	Signer   bool   `json:"signer,omitempty"`
}

// Arg 表示指令参数的名称与类型描述。
// Type 保留原始 JSON 形态（字符串或复合对象），仅用于文档展示，
// 实际反序列化布局由注册的参数结构体决定。
type Arg struct {
	Name string `json:"name"`
	Type any    `json:"type"`
}

// Parse 解析 IDL JSON 文档。
func Parse(data []byte) (*IDL, error) {
	var doc IDL
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse idl: %w", err)
	}
	return &doc, nil
}
