package wallet

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

// ErrInvalidMnemonic 助记词无效
var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// 有效的助记词单词数量
var validWordCounts = map[int]bool{12: true, 15: true, 18: true, 21: true, 24: true}

// ValidateMnemonic 验证助记词: 单词数量、词表与校验和
func ValidateMnemonic(mnemonic string) error {
	mnemonic = normalizeMnemonic(mnemonic)
	if mnemonic == "" {
		return fmt.Errorf("%w: empty", ErrInvalidMnemonic)
	}

	words := strings.Split(mnemonic, " ")
	if !validWordCounts[len(words)] {
		return fmt.Errorf("%w: %d words, expected 12, 15, 18, 21 or 24", ErrInvalidMnemonic, len(words))
	}
	for i, word := range words {
		if _, ok := bip39.GetWordIndex(word); !ok {
			return fmt.Errorf("%w: word %d %q is not in the BIP39 wordlist", ErrInvalidMnemonic, i+1, word)
		}
	}

	if !bip39.IsMnemonicValid(mnemonic) {
		return fmt.Errorf("%w: checksum mismatch", ErrInvalidMnemonic)
	}
	return nil
}

// SeedFromMnemonic 由BIP39助记词派生32字节Ed25519种子
// 取BIP39种子(PBKDF2-HMAC-SHA512)的前32字节
func SeedFromMnemonic(mnemonic, passphrase string) ([]byte, error) {
	if err := ValidateMnemonic(mnemonic); err != nil {
		return nil, err
	}

	full := bip39.NewSeed(normalizeMnemonic(mnemonic), passphrase)
	seed := make([]byte, ed25519.SeedSize)
	copy(seed, full[:ed25519.SeedSize])
	return seed, nil
}

// normalizeMnemonic 小写并规范化空格
func normalizeMnemonic(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
