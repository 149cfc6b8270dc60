package services

import (
	"errors"
	"strings"
	"time"

	"mindtrackerd/internal/models"
	"mindtrackerd/internal/providers"
	"mindtrackerd/internal/tracker/interfaces"
)

var (
	ErrEmptyText   = errors.New("entry text is empty")
	ErrUnknownMood = errors.New("unknown mood")
)

type JournalServiceInterface interface {
	SaveEntry(text, mood string, now time.Time) (*models.JournalEntry, error)
	Entries() map[string]*models.JournalEntry
	EntryCount() int
}

type JournalService struct {
	journal   *models.Journal
	persister interfaces.SchedulerInterface
	logger    providers.Logger
}

func NewJournalService(journal *models.Journal, persister interfaces.SchedulerInterface, logger providers.Logger) JournalServiceInterface {
	return &JournalService{
		journal:   journal,
		persister: persister,
		logger:    logger,
	}
}

// SaveEntry stores today's entry, overwriting any earlier one for the same
// calendar day, and persists the state file before returning. A persistence
// failure does not lose the in-memory entry, so it is logged rather than
// returned.
func (s *JournalService) SaveEntry(text, mood string, now time.Time) (*models.JournalEntry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	m, ok := models.MoodByName(mood)
	if !ok {
		return nil, ErrUnknownMood
	}

	entry := &models.JournalEntry{
		Text:      text,
		Mood:      m.Name,
		CreatedAt: now,
		Color:     m.Color,
	}
	date := now.Format(models.DateLayout)
	s.journal.Set(date, entry)

	if err := s.persister.Persist(); err != nil {
		s.logger.Errorf(providers.TypeApp, "Entry for %s saved in memory but not persisted: %s", date, err)
	}
	return entry, nil
}

func (s *JournalService) Entries() map[string]*models.JournalEntry {
	return s.journal.GetData()
}

func (s *JournalService) EntryCount() int {
	return s.journal.Len()
}
