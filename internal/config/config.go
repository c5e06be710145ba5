package config

import (
	"tx-inspector-sol/internal/pkg/logger"
)

type LogConfig struct {
	Format   string `yaml:"format"`   // 日志格式，支持 "console" 或 "json"
	LogDir   string `yaml:"log_dir"`  // 日志目录（可为相对路径或绝对路径）
	Level    string `yaml:"level"`    // 日志级别：debug / info / warn / error
	Compress bool   `yaml:"compress"` // 是否压缩旧日志文件
}

func (c *LogConfig) ToLogOption() logger.LogOption {
	return logger.LogOption{
		Format:   c.Format,
		LogDir:   c.LogDir,
		Level:    c.Level,
		Compress: c.Compress,
	}
}

// RpcConfig 表示 Solana RPC 节点配置
type RpcConfig struct {
	Endpoint   string `yaml:"endpoint"`    // RPC 节点地址，例如 https://api.mainnet-beta.solana.com
	TimeoutSec int    `yaml:"timeout_sec"` // 单次请求超时（秒），<=0 时使用默认值
}

// InspectConfig 是交易解码工具的主配置结构体
type InspectConfig struct {
	LogConf LogConfig `yaml:"logger"` // 日志配置
	RpcConf RpcConfig `yaml:"rpc"`    // RPC 客户端配置
}
