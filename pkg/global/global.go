package global

import (
	"sync"

	"focus-launcher/pkg/config"
	"focus-launcher/pkg/logger"
)

var (
	cfg *config.Config
	log *logger.Logger
	mu  sync.RWMutex
)

// InitGlobals installs the process-wide config and logger.
func InitGlobals(config *config.Config, logger *logger.Logger) {
	mu.Lock()
	defer mu.Unlock()
	cfg = config
	log = logger
}

// GetConfig returns the global config instance, or the defaults before init.
func GetConfig() *config.Config {
	mu.RLock()
	defer mu.RUnlock()
	if cfg == nil {
		return config.Default()
	}
	return cfg
}

// GetLogger returns the global logger instance, or a no-op logger before init.
func GetLogger() *logger.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if log == nil {
		return logger.Nop()
	}
	return log
}
