package main

import (
	"context"
	stdErrors "errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"FiberAgent-Registry/internal/card"
	"FiberAgent-Registry/internal/config"
	xerrors "FiberAgent-Registry/internal/errors"
	"FiberAgent-Registry/internal/registration"
	"FiberAgent-Registry/pkg/logger"
)

// main 打印 FiberAgent 的 ERC-8004 手动注册说明并生成环境变量模板。
func main() {
	logging := config.DefaultLogging()
	if err := logger.Init(logger.Config{
		Level:       logging.Level,
		Format:      logging.Format,
		OutputPaths: logging.OutputPaths,
	}); err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}

	runLog, _ := logger.WithRunID(logger.Named("register-erc8004"))

	dir, err := config.ProgramDir()
	if err != nil {
		os.Exit(report(os.Stdout, runLog, err))
	}

	code := execute(os.Stdout, config.Resolve(dir), runLog)
	_ = logger.Sync()
	os.Exit(code)
}

// execute 完成一次运行并返回进程退出码。
func execute(stdout io.Writer, layout config.Layout, runLog *slog.Logger) int {
	if err := run(stdout, layout, runLog); err != nil {
		return report(stdout, runLog, err)
	}
	return 0
}

func run(stdout io.Writer, layout config.Layout, runLog *slog.Logger) error {
	return registration.Run(registration.Options{
		Layout:  layout,
		Profile: registration.Default(),
		Stdout:  stdout,
		Logger:  runLog,
	})
}

// report 输出失败信息并返回进程退出码。缺少描述文件时打印面向用户的提示，
// 其余错误按严重程度写入诊断日志。
func report(stdout io.Writer, runLog *slog.Logger, err error) int {
	if stdErrors.Is(err, card.ErrNotFound) {
		path := config.CardFileName
		if xe, ok := xerrors.From(err); ok {
			if p := xe.MetadataValue("path"); p != "" {
				path = p
			}
		}
		fmt.Fprintf(stdout, "❌ %s not found at %s\n", config.CardFileName, path)
		return 1
	}

	msg := "registration helper failed"
	attrs := []any{"code", string(xerrors.CodeOf(err)), "error", err.Error()}
	if xe, ok := xerrors.From(err); ok {
		msg = xe.Message()
		attrs = xe.LogAttrs()
	}
	if stdErrors.Is(err, card.ErrInvalid) {
		msg = xerrors.AttributesOf(card.CodeCardInvalid).Message
	}
	runLog.Log(context.Background(), levelFor(xerrors.SeverityOf(err)), msg, attrs...)
	return 1
}

func levelFor(sev xerrors.Severity) slog.Level {
	switch sev {
	case xerrors.SeverityInfo:
		return slog.LevelInfo
	case xerrors.SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
