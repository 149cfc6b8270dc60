package models

import "go.uber.org/atomic"

// Prefs holds device-scoped toggles that survive restarts.
type Prefs struct {
	notifications atomic.Bool
}

func NewPrefs() *Prefs {
	return &Prefs{}
}

func (p *Prefs) NotificationsEnabled() bool {
	return p.notifications.Load()
}

func (p *Prefs) SetNotifications(enabled bool) {
	p.notifications.Store(enabled)
}
