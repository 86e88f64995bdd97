package main

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// newLogger builds the command's logger from the log configuration.
func newLogger(cfg config.LogConfig, w io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "log level %q", cfg.Level)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = ""
	var enc zapcore.Encoder
	switch cfg.Format {
	case config.LogJSON:
		enc = zapcore.NewJSONEncoder(encCfg)
	default:
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level)), nil
}

// failureFields extracts the game context carried by a failure.
func failureFields(name string, err error) []zap.Field {
	fields := []zap.Field{zap.String("file", name)}

	var gameErr *errors.GameError
	var parseErr *errors.ParseError
	switch {
	case errors.As(err, &gameErr):
		fields = append(fields, zap.Int("game", gameErr.GameNum))
		if gameErr.Line > 0 {
			fields = append(fields, zap.Int("line", gameErr.Line))
		}
		if gameErr.PlyNum > 0 {
			fields = append(fields, zap.Int("ply", gameErr.PlyNum))
		}
		if gameErr.MoveText != "" {
			fields = append(fields, zap.String("move", gameErr.MoveText))
		}
		fields = append(fields, zap.Error(gameErr.Err))
	case errors.As(err, &parseErr):
		fields = append(fields, zap.Int("line", parseErr.Line), zap.Int("column", parseErr.Column), zap.Error(err))
	default:
		fields = append(fields, zap.Error(err))
	}
	return fields
}

// logFailure reports one game that did not pass.
func logFailure(logger *zap.Logger, name string, err error) {
	logger.Error("game rejected", failureFields(name, err)...)
}
