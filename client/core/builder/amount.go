// Package builder provides burn transaction building functionality for client operations.
package builder

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"
)

// Amount 表示HNT金额（使用最小单位 bones）
//
// HNT金额系统：
//   - 1 HNT = 10^8 bones
//   - 链上金额为 uint64 bones
//   - 字符串解析为精确十进制,不经过浮点数
type Amount struct {
	bones uint64
}

// 常量定义
const (
	// DecimalPlaces HNT的小数位数
	DecimalPlaces = 8

	// BonesPerHNT 1 HNT对应的bones数量
	BonesPerHNT = 100_000_000 // 10^8
)

var (
	// ErrInvalidAmount 无效的金额
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNegativeAmount 负数金额
	ErrNegativeAmount = errors.New("negative amount")

	// ErrAmountOverflow 金额超出uint64范围
	ErrAmountOverflow = errors.New("amount overflow")

	bonesPerHNT = big.NewInt(BonesPerHNT)
)

// NewAmountFromBones 从bones创建Amount
func NewAmountFromBones(bones uint64) Amount {
	return Amount{bones: bones}
}

// ParseHNT 从HNT十进制字符串解析金额
//
// 支持格式：
//   - "1" → 100000000 bones
//   - "1.5" → 150000000 bones
//   - "0.0000001" → 10 bones
//   - "1_000" → 100000000000 bones
func ParseHNT(s string) (Amount, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "_", "")
	if s == "" {
		return Amount{}, fmt.Errorf("%w: empty string", ErrInvalidAmount)
	}
	if strings.HasPrefix(s, "-") {
		return Amount{}, ErrNegativeAmount
	}
	s = strings.TrimPrefix(s, "+")

	whole, frac, hasDot := strings.Cut(s, ".")
	if whole == "" && (!hasDot || frac == "") {
		return Amount{}, fmt.Errorf("%w: %s", ErrInvalidAmount, s)
	}
	if len(frac) > DecimalPlaces {
		return Amount{}, fmt.Errorf("%w: more than %d decimal places", ErrInvalidAmount, DecimalPlaces)
	}
	if !isDigits(whole) || !isDigits(frac) {
		return Amount{}, fmt.Errorf("%w: %s", ErrInvalidAmount, s)
	}

	if whole == "" {
		whole = "0"
	}
	frac += strings.Repeat("0", DecimalPlaces-len(frac))

	// whole * 10^8 + frac
	value, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return Amount{}, fmt.Errorf("%w: %s", ErrInvalidAmount, s)
	}
	fracValue, ok := new(big.Int).SetString(frac, 10)
	if !ok {
		return Amount{}, fmt.Errorf("%w: %s", ErrInvalidAmount, s)
	}
	value.Mul(value, bonesPerHNT).Add(value, fracValue)

	if !value.IsUint64() {
		return Amount{}, fmt.Errorf("%w: %s HNT", ErrAmountOverflow, s)
	}
	return Amount{bones: value.Uint64()}, nil
}

// Bones 返回bones数量
func (a Amount) Bones() uint64 {
	return a.bones
}

// IsZero 判断金额是否为零
func (a Amount) IsZero() bool {
	return a.bones == 0
}

// Add 加法,溢出时返回错误
func (a Amount) Add(b Amount) (Amount, error) {
	if a.bones > math.MaxUint64-b.bones {
		return Amount{}, ErrAmountOverflow
	}
	return Amount{bones: a.bones + b.bones}, nil
}

// ToHNT 转换为HNT单位（float64）
// 注意：大额金额可能损失精度,仅用于展示
func (a Amount) ToHNT() float64 {
	hnt := new(big.Float).Quo(
		new(big.Float).SetUint64(a.bones),
		new(big.Float).SetInt(bonesPerHNT),
	)
	result, _ := hnt.Float64()
	return result
}

// String 转换为HNT单位字符串（保留8位小数）
//
// 示例：
//
//	150000000 → "1.50000000"
//	10 → "0.00000010"
func (a Amount) String() string {
	return fmt.Sprintf("%d.%08d", a.bones/BonesPerHNT, a.bones%BonesPerHNT)
}

// StringTrimmed 转换为HNT单位字符串（移除末尾的0）
func (a Amount) StringTrimmed() string {
	str := strings.TrimRight(a.String(), "0")
	return strings.TrimRight(str, ".")
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
