package lpnb

import (
	glog "github.com/goliatone/go-logger/glog"
)

// Log 是包内使用的日志接口，glog.Logger 满足该接口
type Log interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Logger 全局日志记录器
var Logger Log = newDefaultLogger()

func newDefaultLogger() Log {
	root := glog.NewLogger(
		glog.WithLevel(glog.Warn),
		glog.WithLoggerTypeConsole(),
	)
	return root.GetLogger("lpnb")
}

// SetLogger 设置自定义日志记录器，传入 nil 则关闭日志
func SetLogger(logger Log) {
	if logger == nil {
		logger = nopLogger{}
	}
	Logger = logger
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
