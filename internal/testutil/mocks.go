package testutil

import (
	"context"
	"sync"

	"mindtrackerd/internal/models"
	"mindtrackerd/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// LevelCount returns how many entries were recorded at the given level.
func (m *MockLogger) LevelCount(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockStateService implements services.StateServiceInterface.
type MockStateService struct {
	mu           sync.Mutex
	SnapshotData *models.Envelope
	Restored     []*models.Envelope
}

func (m *MockStateService) Snapshot() *models.Envelope {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SnapshotData != nil {
		return m.SnapshotData
	}
	return &models.Envelope{
		Version: models.StorageVersion,
		Entries: make(map[string]*models.JournalEntry),
	}
}

func (m *MockStateService) Restore(env *models.Envelope) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Restored = append(m.Restored, env)
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu      sync.Mutex
	Data    map[string][]byte
	Deleted []string
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Del(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Data, key)
	m.Deleted = append(m.Deleted, key)
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

// MockNotifier implements interfaces.NotifierInterface with injectable permission.
type MockNotifier struct {
	mu            sync.Mutex
	Granted       bool
	PermissionErr error
	Notifications []Notification
}

type Notification struct {
	Title string
	Body  string
}

func (m *MockNotifier) RequestPermission(_ context.Context) (bool, error) {
	return m.Granted, m.PermissionErr
}

func (m *MockNotifier) Notify(title, body string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Notifications = append(m.Notifications, Notification{Title: title, Body: body})
}

// MockScheduler implements interfaces.SchedulerInterface and counts calls.
type MockScheduler struct {
	mu           sync.Mutex
	InitCalls    int
	StopCalls    int
	RestoreCalls int
	PersistCalls int
	EnableCalls  int
	DisableCalls int
	RestoreErr   error
	PersistErr   error
}

func (m *MockScheduler) Init() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InitCalls++
}

func (m *MockScheduler) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StopCalls++
}

func (m *MockScheduler) Restore() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RestoreCalls++
	return m.RestoreErr
}

func (m *MockScheduler) Persist() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PersistCalls++
	return m.PersistErr
}

func (m *MockScheduler) EnableReminder() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EnableCalls++
}

func (m *MockScheduler) StopReminder() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DisableCalls++
}

// MockAuthenticator implements auth.Authenticator with injectable outcomes.
type MockAuthenticator struct {
	Account   *models.Account
	SignInErr error
	SignUpErr error
}

func (m *MockAuthenticator) SignIn(_ context.Context, email, _ string) (*models.Account, error) {
	if m.SignInErr != nil {
		return nil, m.SignInErr
	}
	if m.Account != nil {
		return m.Account, nil
	}
	return &models.Account{ID: "mock", DisplayName: "Mock User", Email: email}, nil
}

func (m *MockAuthenticator) SignUp(ctx context.Context, email, password string) (*models.Account, error) {
	if m.SignUpErr != nil {
		return nil, m.SignUpErr
	}
	return m.SignIn(ctx, email, password)
}

// StubCheckout implements payments.CheckoutProvider.
type StubCheckout struct {
	URL string
}

func (s *StubCheckout) CheckoutURL() string {
	return s.URL
}
