package services

import "mindtrackerd/internal/models"

// StateServiceInterface exposes the full persisted state as one snapshot.
type StateServiceInterface interface {
	Snapshot() *models.Envelope
	Restore(env *models.Envelope)
}

type StateService struct {
	journal     *models.Journal
	entitlement *models.Entitlement
	prefs       *models.Prefs
	feed        *models.Feed
}

func NewStateService(journal *models.Journal, entitlement *models.Entitlement, prefs *models.Prefs, feed *models.Feed) StateServiceInterface {
	return &StateService{
		journal:     journal,
		entitlement: entitlement,
		prefs:       prefs,
		feed:        feed,
	}
}

func (s *StateService) Snapshot() *models.Envelope {
	pro, pending := s.entitlement.Flags()
	return &models.Envelope{
		Version:       models.StorageVersion,
		Entries:       s.journal.GetData(),
		Pro:           pro,
		ProPending:    pending,
		Notifications: s.prefs.NotificationsEnabled(),
		Posts:         s.feed.List(),
	}
}

func (s *StateService) Restore(env *models.Envelope) {
	if env.Entries != nil {
		s.journal.PutData(env.Entries)
	}
	s.entitlement.SetFlags(env.Pro, env.ProPending)
	s.prefs.SetNotifications(env.Notifications)
	if env.Posts != nil {
		s.feed.PutData(env.Posts)
	}
}
