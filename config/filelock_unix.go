//go:build !windows

package config

import (
	"fmt"
	"os"
	"syscall"
)

func (l *FileLock) flock(flag int, how int) error {
	if l.file != nil {
		return fmt.Errorf("lock already held")
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|flag, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open lock file: %w", err)
	}
	if err := syscall.Flock(int(f.Fd()), how); err != nil {
		f.Close()
		return fmt.Errorf("failed to acquire lock: %w", err)
	}

	l.file = f
	return nil
}

// Lock acquires an exclusive lock, blocking until it is available.
func (l *FileLock) Lock() error {
	return l.flock(os.O_RDWR, syscall.LOCK_EX)
}

// RLock acquires a shared lock. Multiple processes can hold one at once.
func (l *FileLock) RLock() error {
	return l.flock(os.O_RDONLY, syscall.LOCK_SH)
}

// Unlock releases the lock. A no-op when the lock is not held.
func (l *FileLock) Unlock() error {
	if l.file == nil {
		return nil
	}

	if err := syscall.Flock(int(l.file.Fd()), syscall.LOCK_UN); err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if err := l.file.Close(); err != nil {
		return fmt.Errorf("failed to close lock file: %w", err)
	}

	l.file = nil
	return nil
}
