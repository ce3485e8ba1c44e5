package log

import (
	"go.uber.org/zap/zapcore"
)

// 日志配置默认值
const (
	// defaultLogLevel CLI默认只输出警告及以上,-v 提升到debug
	defaultLogLevel = "warn"

	// defaultToConsole 控制台输出写到stderr,不污染stdout上的结果
	defaultToConsole = true

	// defaultFilePath 为空表示不写文件
	defaultFilePath = ""

	// === 日志轮转配置 ===

	defaultMaxSize    = 10 // MB
	defaultMaxBackups = 3
	defaultMaxAge     = 28 // days
	defaultCompress   = true

	// === 调试配置 ===

	defaultEnableCaller     = false
	defaultEnableStacktrace = false
)

// 默认的日志级别映射
var defaultLevelMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
	"panic": zapcore.PanicLevel,
	"fatal": zapcore.FatalLevel,
}
