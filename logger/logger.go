// Package logger builds the zap root logger of the application from its configuration.
package logger

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dainf/bintree/configuration"
)

// ErrInvalidLevel is returned if the configured level is not a known zap level.
var ErrInvalidLevel = errors.New("invalid log level")

// NewRootLogger creates a new root logger from the provided configuration.
func NewRootLogger(cfg Config) (*zap.SugaredLogger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, errors.Wrapf(ErrInvalidLevel, "%q", cfg.Level)
	}

	encoding := cfg.Encoding
	if encoding == "" {
		encoding = DefaultCfg.Encoding
	}

	outputPaths := cfg.OutputPaths
	if len(outputPaths) == 0 {
		outputPaths = DefaultCfg.OutputPaths
	}

	zapCfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		DisableCaller:     cfg.DisableCaller,
		DisableStacktrace: cfg.DisableStacktrace,
		Encoding:          encoding,
		EncoderConfig:     defaultEncoderConfig,
		OutputPaths:       outputPaths,
		ErrorOutputPaths:  []string{"stderr"},
	}

	root, err := zapCfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "unable to build root logger")
	}

	return root.Sugar(), nil
}

// NewRootLoggerFromConfiguration creates a new root logger from the logger keys of the provided
// configuration. Keys that are not set fall back to DefaultCfg.
func NewRootLoggerFromConfiguration(config *configuration.Configuration) (*zap.SugaredLogger, error) {
	cfg := DefaultCfg

	// get config values one by one, so a partially set logger section keeps the other defaults
	if val := config.String(ConfigurationKeyLevel); val != "" {
		cfg.Level = val
	}
	if config.Exists(ConfigurationKeyDisableCaller) {
		cfg.DisableCaller = config.Bool(ConfigurationKeyDisableCaller)
	}
	if config.Exists(ConfigurationKeyDisableStacktrace) {
		cfg.DisableStacktrace = config.Bool(ConfigurationKeyDisableStacktrace)
	}
	if val := config.String(ConfigurationKeyEncoding); val != "" {
		cfg.Encoding = val
	}
	if val := config.Strings(ConfigurationKeyOutputPaths); len(val) > 0 {
		cfg.OutputPaths = val
	}

	return NewRootLogger(cfg)
}
