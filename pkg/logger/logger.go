package logger

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var log atomic.Pointer[zap.SugaredLogger]

func init() {
	log.Store(zap.NewNop().Sugar())
}

// Init builds the process logger. "development" gets a human-readable debug logger,
// every other environment gets JSON at info level.
func Init(env string) {
	var (
		l   *zap.Logger
		err error
	)

	if env == "development" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		l = zap.NewExample()
	}

	log.Store(l.Sugar())
}

// Set swaps the process logger, mainly for tests.
func Set(l *zap.Logger) {
	log.Store(l.Sugar())
}

func Sync() error {
	return log.Load().Sync()
}

func Debug(msg string, keysAndValues ...any) {
	log.Load().Debugw(msg, keysAndValues...)
}

func Info(msg string, keysAndValues ...any) {
	log.Load().Infow(msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...any) {
	log.Load().Warnw(msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...any) {
	log.Load().Errorw(msg, keysAndValues...)
}

func Fatal(msg string, keysAndValues ...any) {
	log.Load().Fatalw(msg, keysAndValues...)
}
