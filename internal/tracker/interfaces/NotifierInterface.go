package interfaces

import "context"

// NotifierInterface is the external notification capability: permission is
// user-granted and may be refused, which only disables reminders.
type NotifierInterface interface {
	RequestPermission(ctx context.Context) (bool, error)
	Notify(title, body string)
}
