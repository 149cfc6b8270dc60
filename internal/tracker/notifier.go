package tracker

import (
	"context"

	"mindtrackerd/internal/providers"
	"mindtrackerd/internal/tracker/interfaces"
)

// LogNotifier is the default notification backend: it grants permission
// unconditionally and delivers reminders to the reminder log. Desktop or
// push delivery sits behind the same interface.
type LogNotifier struct {
	logger providers.Logger
}

func NewNotifier(logger providers.Logger) interfaces.NotifierInterface {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) RequestPermission(_ context.Context) (bool, error) {
	n.logger.Infof(providers.TypeReminder, "Notification permission granted")
	return true, nil
}

func (n *LogNotifier) Notify(title, body string) {
	n.logger.Infof(providers.TypeReminder, "%s: %s", title, body)
}
