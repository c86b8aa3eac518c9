package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var l *zap.Logger

// Init builds the process-wide JSON logger tagged with the service name.
func Init(service string) {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "@timestamp"
	encCfg.MessageKey = "message"
	encCfg.LevelKey = "level"
	enc := zapcore.NewJSONEncoder(encCfg)

	core := zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), zapcore.InfoLevel)
	base := zap.New(core).With(
		zap.String("service", service),
	)

	l = base
	zap.ReplaceGlobals(l)
}

func L() *zap.Logger {
	if l == nil {
		Init("pharmacare")
	}
	return l
}
