package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogConfig ...
type LogConfig struct {
	Level string `mapstructure:"level"`
	Mode  string `mapstructure:"mode"`
}

// NewLogger builds a zap logger from config, production encoding by
// default, console encoding when mode is "dev".
func NewLogger(conf LogConfig) *zap.Logger {
	level := zapcore.InfoLevel
	if conf.Level != "" {
		err := level.UnmarshalText([]byte(conf.Level))
		if err != nil {
			panic(err)
		}
	}

	zapConf := zap.NewProductionConfig()
	if conf.Mode == "dev" {
		zapConf = zap.NewDevelopmentConfig()
	}
	zapConf.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapConf.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
