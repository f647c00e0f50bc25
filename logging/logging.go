package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap logger for the engine and tools.
// Development mode uses a colorized console encoder and defaults to debug
// level; production mode emits JSON at info level.
//
// Parameters:
//   - level: minimum level to emit ("debug", "info", "warn", "error"); empty
//     or unparseable values fall back to the mode default
//   - development: if true, builds a console logger instead of JSON
//
// Returns:
//   - *zap.Logger: the configured logger
//   - error: error if the logger cannot be built
func New(level string, development bool) (*zap.Logger, error) {
	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
	}

	if level != "" {
		if lvl, err := zapcore.ParseLevel(level); err == nil {
			cfg.Level = zap.NewAtomicLevelAt(lvl)
		}
	}

	return cfg.Build()
}
