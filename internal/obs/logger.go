package obs

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogConfig struct {
	Level   string
	File    string
	Variant string
	Session string
}

// NewLogger builds the application logger. The terminal belongs to the UI,
// so output goes to a file; an empty file disables logging.
func NewLogger(c LogConfig) (*zap.Logger, error) {
	if c.File == "" {
		return zap.NewNop(), nil
	}

	cfg := zap.NewProductionConfig()
	level := new(zapcore.Level)
	if err := level.Set(c.Level); err != nil {
		*level = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(*level)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{c.File}
	cfg.ErrorOutputPaths = []string{c.File}

	l, err := cfg.Build(
		zap.Fields(
			zap.String("app", "network-ping"),
			zap.String("variant", c.Variant),
			zap.String("session", c.Session),
		),
	)
	if err != nil {
		return nil, err
	}
	return l, nil
}
