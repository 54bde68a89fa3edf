package test_webhook

import (
	"github.com/igextreme/agenda-service/internal/notifications"
)

// Notifier queues events for asynchronous delivery.
type Notifier interface {
	Enqueue(event notifications.Event)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
