package logger

import "go.uber.org/zap"

var (
	Logger = zap.NewNop()
	Sugar  = Logger.Sugar()
)

func SetLogger(l *zap.Logger) {
	Logger = l
	Sugar = l.Sugar()
}
