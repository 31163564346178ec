package config

import "os"

type AppConfig struct {
	DebugMode     bool
	APIConfig     *APIConfig
	LocalStoreCfg *LocalStoreConfig
}

func NewSystemConfig() *AppConfig {
	return &AppConfig{
		DebugMode:     os.Getenv("DEBUG_MODE") == "true",
		APIConfig:     NewAPIConfig(),
		LocalStoreCfg: NewLocalStoreConfig(),
	}
}
