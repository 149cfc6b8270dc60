package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoodByName_Known(t *testing.T) {
	m, ok := MoodByName("Happy")
	require.True(t, ok)
	assert.Equal(t, "😊", m.Emoji)
	assert.Equal(t, "#fbbf24", m.Color)
}

func TestMoodByName_Unknown(t *testing.T) {
	_, ok := MoodByName("Ecstatic")
	assert.False(t, ok)
}

func TestMoods_FixedSet(t *testing.T) {
	require.Len(t, Moods, 5)
	names := make([]string, 0, len(Moods))
	for _, m := range Moods {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"Happy", "Calm", "Sad", "Anxious", "Angry"}, names)
}

func TestJournal_SetAndGet(t *testing.T) {
	j := NewJournal()
	entry := &JournalEntry{Text: "good day", Mood: "Happy", CreatedAt: time.Now()}
	j.Set("2026-01-03", entry)

	got, ok := j.Get("2026-01-03")
	require.True(t, ok)
	assert.Equal(t, "good day", got.Text)
	assert.Equal(t, 1, j.Len())
}

func TestJournal_SetOverwritesSameDay(t *testing.T) {
	j := NewJournal()
	j.Set("2026-01-03", &JournalEntry{Text: "first", Mood: "Happy"})
	j.Set("2026-01-03", &JournalEntry{Text: "second", Mood: "Sad"})

	got, ok := j.Get("2026-01-03")
	require.True(t, ok)
	assert.Equal(t, "second", got.Text)
	assert.Equal(t, "Sad", got.Mood)
	assert.Equal(t, 1, j.Len())
}

func TestJournal_GetMissing(t *testing.T) {
	j := NewJournal()
	_, ok := j.Get("2026-01-03")
	assert.False(t, ok)
}

func TestJournal_GetDataReturnsCopy(t *testing.T) {
	j := NewJournal()
	j.Set("2026-01-03", &JournalEntry{Text: "one", Mood: "Calm"})

	data := j.GetData()
	delete(data, "2026-01-03")

	assert.Equal(t, 1, j.Len())
}

func TestJournal_PutDataReplaces(t *testing.T) {
	j := NewJournal()
	j.Set("2026-01-01", &JournalEntry{Text: "old", Mood: "Sad"})

	j.PutData(map[string]*JournalEntry{
		"2026-01-03": {Text: "new", Mood: "Happy"},
	})

	_, ok := j.Get("2026-01-01")
	assert.False(t, ok)
	got, ok := j.Get("2026-01-03")
	require.True(t, ok)
	assert.Equal(t, "new", got.Text)
}
