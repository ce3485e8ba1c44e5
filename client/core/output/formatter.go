// Package output provides output formatting functionality for client commands.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/weisyn/burnwallet/client/pkg/jsonx"
)

// Format 输出格式
type Format string

const (
	// FormatTable 表格格式（默认）
	FormatTable Format = "table"
	// FormatJSON 美化JSON格式
	FormatJSON Format = "json"
)

// ParseFormat 解析输出格式
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatTable, "":
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (table|json)", s)
	}
}

// Formatter 输出格式化器
type Formatter struct {
	format    Format
	writer    io.Writer // 数据输出（JSON/表格）
	logWriter io.Writer // 提示输出（Info/Success/Error）
}

// NewFormatter 创建格式化器
func NewFormatter(format Format, writer io.Writer) *Formatter {
	if writer == nil {
		writer = os.Stdout
	}

	return &Formatter{
		format:    format,
		writer:    writer,    // 数据输出到 stdout
		logWriter: os.Stderr, // 提示输出到 stderr（避免污染 JSON）
	}
}

// Format 当前输出格式
func (f *Formatter) Format() Format {
	return f.format
}

// SetLogWriter 设置提示输出目标（默认 stderr）
func (f *Formatter) SetLogWriter(writer io.Writer) {
	if writer == nil {
		writer = os.Stderr
	}
	f.logWriter = writer
}

// KeyValue 表格中的一行
type KeyValue struct {
	Key   string
	Value string
}

// PrintKeyValues 打印有序键值对: 表格为两列,JSON为对象
func (f *Formatter) PrintKeyValues(pairs []KeyValue) error {
	if f.format == FormatJSON {
		obj := make(map[string]string, len(pairs))
		for _, kv := range pairs {
			obj[kv.Key] = kv.Value
		}
		return f.printJSON(obj)
	}

	data := make([][]string, 0, len(pairs)+1)
	data = append(data, []string{"Key", "Value"})
	for _, kv := range pairs {
		data = append(data, []string{kv.Key, kv.Value})
	}
	return f.printTable(data)
}

// printJSON 打印缩进JSON
func (f *Formatter) printJSON(data interface{}) error {
	out, err := jsonx.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := fmt.Fprintln(f.writer, string(out)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// printTable 用pterm渲染带表头的表格
func (f *Formatter) printTable(data [][]string) error {
	rendered, err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderRowSeparator("-").
		WithData(data).
		Srender()
	if err != nil {
		return fmt.Errorf("render table: %w", err)
	}

	if _, err := fmt.Fprintln(f.writer, rendered); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// printLine 向数据输出写一行
func (f *Formatter) printLine(line string) error {
	if _, err := fmt.Fprintln(f.writer, line); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// PrintSuccess 打印成功消息（输出到 stderr，避免污染 JSON）
func (f *Formatter) PrintSuccess(message string) {
	_, _ = fmt.Fprintf(f.logWriter, "✅ %s\n", message)
}

// PrintError 打印错误消息（输出到 stderr）
func (f *Formatter) PrintError(err error) {
	_, _ = fmt.Fprintf(f.logWriter, "❌ Error: %v\n", err)
}

// PrintWarning 打印警告消息（输出到 stderr）
func (f *Formatter) PrintWarning(message string) {
	_, _ = fmt.Fprintf(f.logWriter, "⚠️  %s\n", message)
}
