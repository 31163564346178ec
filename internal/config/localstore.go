package config

import (
	"os"
	"path/filepath"
)

type LocalStoreConfig struct {
	DatabasePath string
	KeyPath      string
}

func NewLocalStoreConfig() *LocalStoreConfig {
	dir := os.Getenv("ALGOARENA_STATE_DIR")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		dir = filepath.Join(home, ".algoarena")
	}
	return &LocalStoreConfig{
		DatabasePath: filepath.Join(dir, "state.db"),
		KeyPath:      filepath.Join(dir, "state.key"),
	}
}
