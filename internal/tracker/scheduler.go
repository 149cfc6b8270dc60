package tracker

import (
	"fmt"
	"sync"
	"time"

	"github.com/roylee0704/gron"
	"go.uber.org/atomic"

	"mindtrackerd/internal/models"
	"mindtrackerd/internal/providers"
	"mindtrackerd/internal/structures"
	"mindtrackerd/internal/tracker/interfaces"
)

type Scheduler struct {
	config         *structures.Config
	logger         providers.Logger
	fileManager    *FileManager
	notifier       interfaces.NotifierInterface
	session        *models.Session
	prefs          *models.Prefs
	metrics        providers.MetricsProviderInterface
	cron           *gron.Cron
	opsMu          sync.Mutex
	reminderActive atomic.Bool
}

func (s *Scheduler) Init() {
	s.cron = gron.New()
	interval := s.config.Persistence.SaveInterval

	s.cron.AddFunc(gron.Every(interval*time.Second), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		start := time.Now()
		err := s.fileManager.SaveToFile(s.config.Persistence.FilePath)
		if err != nil {
			s.logger.Errorf(providers.TypeApp, "Error while persisting data: %s", err)
			return
		}
		s.metrics.ObservePersistenceDuration(time.Since(start))
		s.logger.Infof(providers.TypeApp, "Persisted data to file %s", s.config.Persistence.FilePath)
	})

	// The reminder flag mirrors the persisted preference at startup; Init
	// runs after Restore.
	s.reminderActive.Store(s.prefs.NotificationsEnabled())
	at := fmt.Sprintf("%02d:00", s.config.Reminder.Hour)
	s.cron.AddFunc(gron.Every(24*time.Hour).At(at), s.fireReminder)

	s.cron.Start()
}

// fireReminder delivers the daily prompt. It re-checks all gates at fire
// time so a reminder can never target a stale or signed-out session.
func (s *Scheduler) fireReminder() {
	if !s.reminderActive.Load() || !s.prefs.NotificationsEnabled() {
		return
	}
	if !s.session.Active() {
		s.logger.Debugf(providers.TypeReminder, "No active session, reminder skipped")
		return
	}
	s.notifier.Notify("MindTracker", "How are you feeling today?")
	s.logger.Infof(providers.TypeReminder, "Daily reminder fired")
}

func (s *Scheduler) EnableReminder() {
	s.reminderActive.Store(true)
}

func (s *Scheduler) StopReminder() {
	s.reminderActive.Store(false)
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) Restore() error {
	err := s.fileManager.LoadFromFile(s.config.Persistence.FilePath)
	if err != nil {
		return err
	}
	return nil
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	start := time.Now()
	err := s.fileManager.SaveToFile(s.config.Persistence.FilePath)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting data: %s", err)
		return err
	}
	s.metrics.ObservePersistenceDuration(time.Since(start))
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, fileManager *FileManager, notifier interfaces.NotifierInterface, session *models.Session, prefs *models.Prefs, metrics providers.MetricsProviderInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:      config,
		logger:      logger,
		fileManager: fileManager,
		notifier:    notifier,
		session:     session,
		prefs:       prefs,
		metrics:     metrics,
	}
}
