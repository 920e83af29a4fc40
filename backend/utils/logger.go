package utils

import (
	"log"
	"os"
)

// LoggerConfig controls how the application logger is built.
type LoggerConfig struct {
	// Output stream (defaults to os.Stdout)
	Output *os.File
	// Enable ANSI colors for the prefix
	EnableColors bool
}

// InitLogger builds the shared application logger.
func InitLogger(config ...LoggerConfig) *log.Logger {
	var cfg LoggerConfig
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	prefix := "[quicklearn] "
	if cfg.EnableColors {
		prefix = "\033[36m" + prefix + "\033[0m"
	}

	return log.New(cfg.Output, prefix, log.LstdFlags|log.LUTC)
}
