//go:build windows

package config

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

func (l *FileLock) lockFile(openFlag int, lockFlags uint32) error {
	if l.file != nil {
		return fmt.Errorf("lock already held")
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|openFlag, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open lock file: %w", err)
	}

	// Lock one byte; the config writer always takes the same range.
	ol := new(windows.Overlapped)
	if err := windows.LockFileEx(windows.Handle(f.Fd()), lockFlags, 0, 1, 0, ol); err != nil {
		f.Close()
		return fmt.Errorf("failed to acquire lock: %w", err)
	}

	l.file = f
	return nil
}

// Lock acquires an exclusive lock, blocking until it is available.
func (l *FileLock) Lock() error {
	return l.lockFile(os.O_RDWR, windows.LOCKFILE_EXCLUSIVE_LOCK)
}

// RLock acquires a shared lock. Multiple processes can hold one at once.
func (l *FileLock) RLock() error {
	return l.lockFile(os.O_RDONLY, 0)
}

// Unlock releases the lock. A no-op when the lock is not held.
func (l *FileLock) Unlock() error {
	if l.file == nil {
		return nil
	}

	ol := new(windows.Overlapped)
	if err := windows.UnlockFileEx(windows.Handle(l.file.Fd()), 0, 1, 0, ol); err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if err := l.file.Close(); err != nil {
		return fmt.Errorf("failed to close lock file: %w", err)
	}

	l.file = nil
	return nil
}
