// Package log 提供基于zap的日志接口与实现
// 控制台输出固定写到stderr,文件输出经lumberjack轮转
package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	logconfig "github.com/weisyn/burnwallet/internal/config/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger 日志接口
type Logger interface {
	Debug(msg string)
	Debugf(format string, args ...interface{})
	Info(msg string)
	Infof(format string, args ...interface{})
	Warn(msg string)
	Warnf(format string, args ...interface{})
	Error(msg string)
	Errorf(format string, args ...interface{})

	// With 返回带有键值对字段的日志记录器: key1, value1, key2, value2, ...
	With(args ...interface{}) Logger

	Sync() error
}

var (
	// 全局日志实例
	globalLogger Logger
	mu           sync.RWMutex
)

// zapLogger Logger的zap实现
type zapLogger struct {
	zap   *zap.Logger
	sugar *zap.SugaredLogger
}

func init() {
	ResetDefault()
}

// ResetDefault 重置全局日志记录器为默认配置
func ResetDefault() {
	logger, err := New(logconfig.New(nil))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize default logger: %v\n", err)
		return
	}
	SetLogger(logger)
}

// New 根据配置创建日志记录器
func New(config *logconfig.Config) (Logger, error) {
	return NewWithConsole(config, zapcore.Lock(os.Stderr))
}

// NewWithConsole 创建日志记录器,控制台输出写到给定的writer
func NewWithConsole(config *logconfig.Config, console zapcore.WriteSyncer) (Logger, error) {
	level := zap.NewAtomicLevelAt(config.GetZapLevel())

	var cores []zapcore.Core
	if config.IsConsoleEnabled() {
		cores = append(cores, zapcore.NewCore(config.CreateConsoleEncoder(), console, level))
	}

	if path := config.GetFilePath(); path != "" {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("resolve log file path: %w", err)
		}
		writer, err := createFileWriter(absPath, config)
		if err != nil {
			return nil, err
		}
		cores = append(cores, zapcore.NewCore(config.CreateFileEncoder(), writer, level))
	}

	var opts []zap.Option
	if config.IsCallerEnabled() {
		// 跳过一层封装,调用位置指向业务代码
		opts = append(opts, zap.AddCaller(), zap.AddCallerSkip(1))
	}
	if config.IsStacktraceEnabled() {
		opts = append(opts, zap.AddStacktrace(zapcore.ErrorLevel))
	}

	z := zap.New(zapcore.NewTee(cores...), opts...)
	return &zapLogger{zap: z, sugar: z.Sugar()}, nil
}

// createFileWriter 创建带轮转的日志文件写入器
func createFileWriter(logPath string, config *logconfig.Config) (zapcore.WriteSyncer, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    config.GetMaxSize(), // megabytes
		MaxBackups: config.GetMaxBackups(),
		MaxAge:     config.GetMaxAge(), // days
		Compress:   config.IsCompressionEnabled(),
	}), nil
}

// Nop 不输出任何内容的日志记录器
func Nop() Logger {
	z := zap.NewNop()
	return &zapLogger{zap: z, sugar: z.Sugar()}
}

// SetLogger 设置全局日志记录器
func SetLogger(logger Logger) {
	if logger == nil {
		return
	}
	mu.Lock()
	globalLogger = logger
	mu.Unlock()
}

// GetLogger 获取全局日志记录器
func GetLogger() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}

// ===== 全局日志函数 =====

func Debugf(format string, args ...interface{}) {
	GetLogger().Debugf(format, args...)
}

func Infof(format string, args ...interface{}) {
	GetLogger().Infof(format, args...)
}

func Warnf(format string, args ...interface{}) {
	GetLogger().Warnf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	GetLogger().Errorf(format, args...)
}

// With 基于全局日志记录器创建带字段的记录器
func With(args ...interface{}) Logger {
	return GetLogger().With(args...)
}

// Sync 刷新全局日志记录器
func Sync() error {
	return GetLogger().Sync()
}

// ===== zapLogger 方法 =====

func (l *zapLogger) Debug(msg string) {
	l.sugar.Debug(msg)
}

func (l *zapLogger) Debugf(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

func (l *zapLogger) Info(msg string) {
	l.sugar.Info(msg)
}

func (l *zapLogger) Infof(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

func (l *zapLogger) Warn(msg string) {
	l.sugar.Warn(msg)
}

func (l *zapLogger) Warnf(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

func (l *zapLogger) Error(msg string) {
	l.sugar.Error(msg)
}

func (l *zapLogger) Errorf(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// With 返回一个带有额外字段的Logger
func (l *zapLogger) With(args ...interface{}) Logger {
	z := l.zap.With(toZapFields(args...)...)
	return &zapLogger{zap: z, sugar: z.Sugar()}
}

// Sync 同步日志缓冲区到输出
// stderr 等终端设备上的 sync 错误被忽略
func (l *zapLogger) Sync() error {
	err := l.zap.Sync()
	if err != nil && isIgnorableSyncError(err) {
		return nil
	}
	return err
}

// toZapFields 可变参数转换为zap字段,奇数个参数时丢弃最后一个
func toZapFields(args ...interface{}) []zap.Field {
	if len(args)%2 != 0 {
		args = args[:len(args)-1]
	}

	fields := make([]zap.Field, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		fields = append(fields, zap.Any(key, args[i+1]))
	}
	return fields
}
