package lpnb

// Notifier 是宿主提供的用户提示通道，只在解析失败时使用
type Notifier interface {
	ShowErrorMessage(message string)
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(message string)

// ShowErrorMessage calls f(message).
func (f NotifierFunc) ShowErrorMessage(message string) {
	f(message)
}

// LogNotifier writes notifications to the package Logger at warn level.
type LogNotifier struct{}

// ShowErrorMessage logs the message.
func (LogNotifier) ShowErrorMessage(message string) {
	Logger.Warn(message)
}
