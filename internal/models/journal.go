package models

import (
	"sync"
	"time"
)

// DateLayout is the calendar-day key format for journal entries.
const DateLayout = "2006-01-02"

type Mood struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	Color string `json:"color"`
}

// Moods is the fixed mood reference set. Order matters: it is the
// enumeration order used for deterministic iteration in analytics output.
var Moods = []Mood{
	{Name: "Happy", Emoji: "😊", Color: "#fbbf24"},
	{Name: "Calm", Emoji: "😌", Color: "#60a5fa"},
	{Name: "Sad", Emoji: "😢", Color: "#a78bfa"},
	{Name: "Anxious", Emoji: "😰", Color: "#f87171"},
	{Name: "Angry", Emoji: "😠", Color: "#ef4444"},
}

func MoodByName(name string) (Mood, bool) {
	for _, m := range Moods {
		if m.Name == name {
			return m, true
		}
	}
	return Mood{}, false
}

type JournalEntry struct {
	Text      string    `json:"text"`
	Mood      string    `json:"mood"`
	CreatedAt time.Time `json:"created_at"`
	Color     string    `json:"color"`
}

// Journal holds at most one entry per calendar day, keyed by DateLayout date.
type Journal struct {
	Mutex sync.RWMutex
	Data  map[string]*JournalEntry
}

func NewJournal() *Journal {
	return &Journal{
		Data: make(map[string]*JournalEntry),
	}
}

func (j *Journal) Get(date string) (*JournalEntry, bool) {
	j.Mutex.RLock()
	defer j.Mutex.RUnlock()
	val, ok := j.Data[date]
	return val, ok
}

// Set overwrites any existing entry for the same date (last write wins).
func (j *Journal) Set(date string, entry *JournalEntry) {
	j.Mutex.Lock()
	defer j.Mutex.Unlock()
	j.Data[date] = entry
}

func (j *Journal) Len() int {
	j.Mutex.RLock()
	defer j.Mutex.RUnlock()
	return len(j.Data)
}

func (j *Journal) GetData() map[string]*JournalEntry {
	j.Mutex.RLock()
	defer j.Mutex.RUnlock()

	copyMap := make(map[string]*JournalEntry, len(j.Data))
	for k, v := range j.Data {
		copyMap[k] = v
	}
	return copyMap
}

func (j *Journal) PutData(data map[string]*JournalEntry) {
	j.Mutex.Lock()
	defer j.Mutex.Unlock()
	j.Data = data
}
