package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// CardFileName 是本地智能体描述文件的固定文件名。
	CardFileName = "FiberAgent-card.json"
	// EnvFileName 是生成的环境变量模板文件名。
	EnvFileName = ".env.erc8004"
)

// Logging 描述诊断日志的编译期默认配置。
type Logging struct {
	Level       string
	Format      string
	OutputPaths []string
}

// DefaultLogging 返回诊断日志的默认配置。标准输出留给注册说明，日志只写标准错误。
func DefaultLogging() Logging {
	return Logging{
		Level:       "info",
		Format:      "text",
		OutputPaths: []string{"stderr"},
	}
}

// Layout 描述一次运行所涉及的输入输出路径。
type Layout struct {
	BaseDir  string
	CardPath string
	EnvPath  string
}

// Resolve 基于给定目录拼出固定的输入输出路径。
func Resolve(baseDir string) Layout {
	if baseDir == "" {
		baseDir = "."
	}
	return Layout{
		BaseDir:  baseDir,
		CardPath: filepath.Join(baseDir, CardFileName),
		EnvPath:  filepath.Join(baseDir, EnvFileName),
	}
}

// ProgramDir 返回当前可执行文件所在目录，符号链接会被解析。
func ProgramDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("定位可执行文件失败: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
