package logger

import "go.uber.org/zap"

func ProvideLoggerMiddleware() *Middleware {
	return &Middleware{access: NewLog("http-access.log")}
}

func ProvideLogger() *zap.Logger { return NewLog("system.log") }

// NewWithAccess lets tests supply their own access logger.
func NewWithAccess(l *zap.Logger) *Middleware {
	if l == nil {
		l = zap.NewNop()
	}
	return &Middleware{access: l}
}
