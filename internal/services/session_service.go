package services

import (
	"context"

	"go.uber.org/atomic"

	"mindtrackerd/internal/auth"
	"mindtrackerd/internal/models"
	"mindtrackerd/internal/providers"
	"mindtrackerd/internal/tracker/interfaces"
)

type SessionServiceInterface interface {
	Login(ctx context.Context, email, password string) (*models.Account, error)
	Signup(ctx context.Context, email, password string) (*models.Account, error)
	Logout()
	Current() *models.Account
}

// SessionService holds the single active session. Authentication is the only
// suspending operation in the app, so it guards against duplicate submission
// while a round-trip is in flight.
type SessionService struct {
	session       *models.Session
	prefs         *models.Prefs
	authenticator auth.Authenticator
	scheduler     interfaces.SchedulerInterface
	logger        providers.Logger
	inFlight      atomic.Bool
}

func NewSessionService(session *models.Session, prefs *models.Prefs, authenticator auth.Authenticator, scheduler interfaces.SchedulerInterface, logger providers.Logger) SessionServiceInterface {
	return &SessionService{
		session:       session,
		prefs:         prefs,
		authenticator: authenticator,
		scheduler:     scheduler,
		logger:        logger,
	}
}

func (s *SessionService) Login(ctx context.Context, email, password string) (*models.Account, error) {
	return s.establish(ctx, email, password, s.authenticator.SignIn)
}

func (s *SessionService) Signup(ctx context.Context, email, password string) (*models.Account, error) {
	return s.establish(ctx, email, password, s.authenticator.SignUp)
}

func (s *SessionService) establish(ctx context.Context, email, password string, call func(context.Context, string, string) (*models.Account, error)) (*models.Account, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, &auth.Error{Message: "sign-in already in progress"}
	}
	defer s.inFlight.Store(false)

	account, err := call(ctx, email, password)
	if err != nil {
		s.logger.Warnf(providers.TypeApp, "Authentication failed: %s", err)
		return nil, err
	}

	s.session.Set(account)
	if s.prefs.NotificationsEnabled() {
		s.scheduler.EnableReminder()
	}
	s.logger.Infof(providers.TypeApp, "Session established for %s", account.Email)
	return account, nil
}

// Logout clears the session unconditionally and cancels the daily reminder
// so it cannot fire against a stale session.
func (s *SessionService) Logout() {
	s.session.Clear()
	s.scheduler.StopReminder()
	s.logger.Infof(providers.TypeApp, "Session cleared")
}

func (s *SessionService) Current() *models.Account {
	return s.session.Current()
}
