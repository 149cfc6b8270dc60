package models

import "time"

// StorageVersion is the current persistence envelope version.
const StorageVersion = 2

// Envelope is the single persisted blob: the journal map plus the
// device-scoped entitlement flags, notification toggle and community feed.
type Envelope struct {
	Version       int                      `json:"version"`
	Entries       map[string]*JournalEntry `json:"entries"`
	Pro           bool                     `json:"pro"`
	ProPending    bool                     `json:"pro_pending"`
	Notifications bool                     `json:"notifications"`
	Posts         []*CommunityPost         `json:"posts"`
}

// LegacyEntry is the v1 entry shape: a bare date->entry map with an
// epoch-millisecond "time" field instead of an envelope.
type LegacyEntry struct {
	Text  string `json:"text"`
	Mood  string `json:"mood"`
	Time  int64  `json:"time"`
	Color string `json:"color"`
}

func (le *LegacyEntry) Upgrade() *JournalEntry {
	return &JournalEntry{
		Text:      le.Text,
		Mood:      le.Mood,
		CreatedAt: time.UnixMilli(le.Time),
		Color:     le.Color,
	}
}
