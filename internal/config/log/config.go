package log

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// LogOptions 日志配置选项
// 作为profile的一部分序列化,未出现的字段取默认值
type LogOptions struct {
	// === 基础配置 ===
	Level     string `json:"level,omitempty"`      // 日志级别 (debug, info, warn, error)
	ToConsole *bool  `json:"to_console,omitempty"` // 是否输出到控制台(stderr)
	FilePath  string `json:"file_path,omitempty"`  // 日志文件路径,空则不写文件

	// === 基础轮转配置 ===
	MaxSize    int   `json:"max_size,omitempty"`    // 单个日志文件最大大小(MB)
	MaxBackups int   `json:"max_backups,omitempty"` // 最大备份文件数
	MaxAge     int   `json:"max_age,omitempty"`     // 日志文件最大保留天数
	Compress   *bool `json:"compress,omitempty"`    // 是否压缩历史日志文件

	// === 调试配置 ===
	EnableCaller     bool `json:"enable_caller,omitempty"`
	EnableStacktrace bool `json:"enable_stacktrace,omitempty"`
}

// Config 日志配置实现
type Config struct {
	level            string
	toConsole        bool
	filePath         string
	maxSize          int
	maxBackups       int
	maxAge           int
	compress         bool
	enableCaller     bool
	enableStacktrace bool
}

// New 创建日志配置,用户选项覆盖默认值
func New(user *LogOptions) *Config {
	c := &Config{
		level:            defaultLogLevel,
		toConsole:        defaultToConsole,
		filePath:         defaultFilePath,
		maxSize:          defaultMaxSize,
		maxBackups:       defaultMaxBackups,
		maxAge:           defaultMaxAge,
		compress:         defaultCompress,
		enableCaller:     defaultEnableCaller,
		enableStacktrace: defaultEnableStacktrace,
	}
	if user == nil {
		return c
	}

	if user.Level != "" {
		c.level = strings.ToLower(user.Level)
	}
	if user.ToConsole != nil {
		c.toConsole = *user.ToConsole
	}
	if user.FilePath != "" {
		c.filePath = user.FilePath
	}
	if user.MaxSize > 0 {
		c.maxSize = user.MaxSize
	}
	if user.MaxBackups > 0 {
		c.maxBackups = user.MaxBackups
	}
	if user.MaxAge > 0 {
		c.maxAge = user.MaxAge
	}
	if user.Compress != nil {
		c.compress = *user.Compress
	}
	c.enableCaller = user.EnableCaller
	c.enableStacktrace = user.EnableStacktrace
	return c
}

// WithLevel 返回覆盖了级别的副本
func (c *Config) WithLevel(level string) *Config {
	cp := *c
	cp.level = strings.ToLower(level)
	return &cp
}

// GetLevel 获取日志级别
func (c *Config) GetLevel() string {
	return c.level
}

// GetZapLevel 获取zap日志级别,未知级别回退为warn
func (c *Config) GetZapLevel() zapcore.Level {
	if level, exists := defaultLevelMap[c.level]; exists {
		return level
	}
	return zapcore.WarnLevel
}

// IsConsoleEnabled 是否启用控制台输出
func (c *Config) IsConsoleEnabled() bool {
	return c.toConsole
}

// GetFilePath 获取日志文件路径
func (c *Config) GetFilePath() string {
	return c.filePath
}

// === 日志轮转配置访问方法 ===

func (c *Config) GetMaxSize() int {
	return c.maxSize
}

func (c *Config) GetMaxBackups() int {
	return c.maxBackups
}

func (c *Config) GetMaxAge() int {
	return c.maxAge
}

func (c *Config) IsCompressionEnabled() bool {
	return c.compress
}

// === 调试配置访问方法 ===

func (c *Config) IsCallerEnabled() bool {
	return c.enableCaller
}

func (c *Config) IsStacktraceEnabled() bool {
	return c.enableStacktrace
}

// === 编码器创建方法 ===

// CreateFileEncoder 创建文件编码器 - JSON格式
func (c *Config) CreateFileEncoder() zapcore.Encoder {
	return zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
	})
}

// CreateConsoleEncoder 创建控制台编码器
func (c *Config) CreateConsoleEncoder() zapcore.Encoder {
	return zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.TimeEncoderOfLayout("15:04:05.000"),
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
	})
}
