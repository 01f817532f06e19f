package logs

import (
	"os"
	"sync"

	"github.com/0xa1bed0/dli/internal/ui"
)

var (
	initOnce sync.Once
	logger   *ui.Logger
)

func Init() {
	initOnce.Do(func() {
		opts := ui.Options{
			Out:      os.Stdout,
			DebugOut: os.Stderr,
			LogLevel: ui.LogLevelInfo,
			Color:    ui.ColorAuto,
		}
		logger = ui.New(opts)
	})
}

func L() *ui.Logger {
	Init()
	return logger
}

func Debugf(format string, args ...any) {
	L().Debug(format, args...)
}

func Errorf(format string, args ...any) {
	L().Error(format, args...)
}
