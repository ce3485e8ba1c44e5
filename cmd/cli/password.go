package main

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// PasswordEnv 非交互使用时提供密码的环境变量
const PasswordEnv = "BURNWALLET_PASSWORD"

// promptPassword 提示输入密码（不回显）,环境变量优先
func promptPassword(prompt string) (string, error) {
	if pw, ok := os.LookupEnv(PasswordEnv); ok {
		return pw, nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("no terminal to read password from; set %s", PasswordEnv)
	}

	fmt.Fprint(os.Stderr, prompt+": ")
	bytePassword, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(bytePassword), nil
}

// promptNewPassword 输入并确认新密码
func promptNewPassword() (string, error) {
	if pw, ok := os.LookupEnv(PasswordEnv); ok {
		return pw, nil
	}

	password, err := promptPassword("Keystore password")
	if err != nil {
		return "", err
	}
	confirm, err := promptPassword("Confirm password")
	if err != nil {
		return "", err
	}
	if password != confirm {
		return "", fmt.Errorf("passwords do not match")
	}
	return password, nil
}
