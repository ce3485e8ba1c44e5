package log

import (
	"errors"
	"syscall"
)

// isIgnorableSyncError 对终端或管道调用fsync返回的错误
func isIgnorableSyncError(err error) bool {
	return errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) || errors.Is(err, syscall.EBADF)
}
