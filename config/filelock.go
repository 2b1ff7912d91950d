package config

import (
	"os"
	"path/filepath"
)

const lockFileName = "config.lock"

// FileLock serializes config writes across processes. It locks a separate
// lock file rather than the config file itself, so readers of the config
// never observe a truncated write.
type FileLock struct {
	path string
	file *os.File
}

// NewFileLock creates a FileLock guarding the given path. The lock file
// lives in the same directory.
func NewFileLock(path string) *FileLock {
	lockPath := filepath.Join(filepath.Dir(path), lockFileName)
	return &FileLock{
		path: lockPath,
	}
}

// GetConfigLock returns a FileLock for the default config file location.
func GetConfigLock() (*FileLock, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}
	configPath := filepath.Join(configDir, ConfigFileName)
	return NewFileLock(configPath), nil
}
