package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindtrackerd/internal/models"
	"mindtrackerd/internal/providers"
	"mindtrackerd/internal/services"
)

// --- local mocks (scoped to controller tests) ---

type mockLogger struct{}

func (m *mockLogger) Errorf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *mockLogger) Warnf(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *mockLogger) Debugf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *mockLogger) Infof(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *mockLogger) Fatalf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *mockLogger) Close()                                                  {}

type mockJournalService struct {
	saved   []saveCall
	saveErr error
	data    map[string]*models.JournalEntry
}

type saveCall struct {
	text string
	mood string
}

func (m *mockJournalService) SaveEntry(text, mood string, now time.Time) (*models.JournalEntry, error) {
	if m.saveErr != nil {
		return nil, m.saveErr
	}
	m.saved = append(m.saved, saveCall{text: text, mood: mood})
	md, _ := models.MoodByName(mood)
	return &models.JournalEntry{Text: text, Mood: mood, CreatedAt: now, Color: md.Color}, nil
}

func (m *mockJournalService) Entries() map[string]*models.JournalEntry {
	if m.data != nil {
		return m.data
	}
	return map[string]*models.JournalEntry{}
}

func (m *mockJournalService) EntryCount() int { return len(m.data) }

type mockAnalyticsService struct {
	summary     *services.Summary
	weekly      map[string]int
	recent      []services.DatedEntry
	recentLimit int
}

func (m *mockAnalyticsService) Summary(_ time.Time) *services.Summary { return m.summary }
func (m *mockAnalyticsService) Weekly(_ time.Time) map[string]int     { return m.weekly }
func (m *mockAnalyticsService) Recent(limit int) []services.DatedEntry {
	m.recentLimit = limit
	return m.recent
}

type mockSessionService struct {
	account *models.Account
	loginFn func(email, password string) (*models.Account, error)
	logouts int
}

func (m *mockSessionService) Login(_ context.Context, email, password string) (*models.Account, error) {
	if m.loginFn != nil {
		return m.loginFn(email, password)
	}
	m.account = &models.Account{ID: "u1", Email: email}
	return m.account, nil
}

func (m *mockSessionService) Signup(ctx context.Context, email, password string) (*models.Account, error) {
	return m.Login(ctx, email, password)
}

func (m *mockSessionService) Logout() {
	m.logouts++
	m.account = nil
}

func (m *mockSessionService) Current() *models.Account { return m.account }

type mockCache struct {
	data    map[string][]byte
	deleted []string
}

func newMockCache() *mockCache                     { return &mockCache{data: make(map[string][]byte)} }
func (m *mockCache) Get(key string) ([]byte, bool) { v, ok := m.data[key]; return v, ok }
func (m *mockCache) Set(key string, value []byte)  { m.data[key] = value }
func (m *mockCache) Del(key string) {
	delete(m.data, key)
	m.deleted = append(m.deleted, key)
}

// --- helpers ---

func signedIn() *mockSessionService {
	return &mockSessionService{account: &models.Account{ID: "u1", Email: "u1@example.com"}}
}

func newApiFixture(journal *mockJournalService, analytics *mockAnalyticsService, session *mockSessionService, cache *mockCache) *ApiController {
	return NewApiController(&mockLogger{}, journal, analytics, session, cache)
}

// --- SaveEntry tests ---

func TestSaveEntry_ValidPayload(t *testing.T) {
	journal := &mockJournalService{}
	cache := newMockCache()
	cache.Set("analytics", []byte("stale"))
	ac := newApiFixture(journal, &mockAnalyticsService{}, signedIn(), cache)

	payload := `{"text":"slept well","mood":"Happy"}`
	req := httptest.NewRequest(http.MethodPost, "/entry", strings.NewReader(payload))
	rr := httptest.NewRecorder()

	ac.SaveEntry(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	require.Len(t, journal.saved, 1)
	assert.Equal(t, "slept well", journal.saved[0].text)
	assert.Equal(t, "Happy", journal.saved[0].mood)

	var entry models.JournalEntry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entry))
	assert.Equal(t, "#fbbf24", entry.Color)

	// Derived views must be invalidated
	_, ok := cache.Get("analytics")
	assert.False(t, ok)
	assert.Contains(t, cache.deleted, "entries")
	assert.Contains(t, cache.deleted, "weekly")
}

func TestSaveEntry_RequiresSession(t *testing.T) {
	journal := &mockJournalService{}
	ac := newApiFixture(journal, &mockAnalyticsService{}, &mockSessionService{}, newMockCache())

	req := httptest.NewRequest(http.MethodPost, "/entry", strings.NewReader(`{"text":"x","mood":"Happy"}`))
	rr := httptest.NewRecorder()

	ac.SaveEntry(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Empty(t, journal.saved)
}

func TestSaveEntry_InvalidJSON(t *testing.T) {
	journal := &mockJournalService{}
	ac := newApiFixture(journal, &mockAnalyticsService{}, signedIn(), newMockCache())

	req := httptest.NewRequest(http.MethodPost, "/entry", strings.NewReader("not json"))
	rr := httptest.NewRecorder()

	ac.SaveEntry(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, journal.saved)
}

func TestSaveEntry_EmptyTextRejected(t *testing.T) {
	journal := &mockJournalService{saveErr: services.ErrEmptyText}
	ac := newApiFixture(journal, &mockAnalyticsService{}, signedIn(), newMockCache())

	req := httptest.NewRequest(http.MethodPost, "/entry", strings.NewReader(`{"text":"  ","mood":"Happy"}`))
	rr := httptest.NewRecorder()

	ac.SaveEntry(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSaveEntry_UnknownMoodRejected(t *testing.T) {
	journal := &mockJournalService{saveErr: services.ErrUnknownMood}
	ac := newApiFixture(journal, &mockAnalyticsService{}, signedIn(), newMockCache())

	req := httptest.NewRequest(http.MethodPost, "/entry", strings.NewReader(`{"text":"x","mood":"Elated"}`))
	rr := httptest.NewRecorder()

	ac.SaveEntry(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSaveEntry_OversizedBody(t *testing.T) {
	journal := &mockJournalService{}
	ac := newApiFixture(journal, &mockAnalyticsService{}, signedIn(), newMockCache())

	big := `{"text":"` + strings.Repeat("x", maxRequestBodySize+1) + `","mood":"Happy"}`
	req := httptest.NewRequest(http.MethodPost, "/entry", strings.NewReader(big))
	rr := httptest.NewRecorder()

	ac.SaveEntry(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// --- read endpoint tests ---

func TestGetEntries_ReturnsJournal(t *testing.T) {
	journal := &mockJournalService{data: map[string]*models.JournalEntry{
		"2026-01-03": {Text: "hi", Mood: "Calm"},
	}}
	ac := newApiFixture(journal, &mockAnalyticsService{}, signedIn(), newMockCache())

	req := httptest.NewRequest(http.MethodGet, "/entries", nil)
	rr := httptest.NewRecorder()
	ac.GetEntries(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var got map[string]*models.JournalEntry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Contains(t, got, "2026-01-03")
}

func TestGetEntries_RequiresSession(t *testing.T) {
	ac := newApiFixture(&mockJournalService{}, &mockAnalyticsService{}, &mockSessionService{}, newMockCache())

	rr := httptest.NewRecorder()
	ac.GetEntries(rr, httptest.NewRequest(http.MethodGet, "/entries", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetEntries_ServedFromCache(t *testing.T) {
	cache := newMockCache()
	cache.Set("entries", []byte(`{"cached":true}`))
	ac := newApiFixture(&mockJournalService{}, &mockAnalyticsService{}, signedIn(), cache)

	rr := httptest.NewRecorder()
	ac.GetEntries(rr, httptest.NewRequest(http.MethodGet, "/entries", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"cached":true}`, rr.Body.String())
}

func TestGetRecentEntries_DefaultLimit(t *testing.T) {
	analytics := &mockAnalyticsService{recent: []services.DatedEntry{}}
	cache := newMockCache()
	ac := newApiFixture(&mockJournalService{}, analytics, signedIn(), cache)

	rr := httptest.NewRecorder()
	ac.GetRecentEntries(rr, httptest.NewRequest(http.MethodGet, "/entries/recent", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, defaultRecentLimit, analytics.recentLimit)
	_, ok := cache.Get("recent:5")
	assert.True(t, ok)
}

func TestGetRecentEntries_CustomLimit(t *testing.T) {
	analytics := &mockAnalyticsService{recent: []services.DatedEntry{}}
	cache := newMockCache()
	ac := newApiFixture(&mockJournalService{}, analytics, signedIn(), cache)

	rr := httptest.NewRecorder()
	ac.GetRecentEntries(rr, httptest.NewRequest(http.MethodGet, "/entries/recent?n=3", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 3, analytics.recentLimit)
	_, ok := cache.Get("recent:3")
	assert.True(t, ok)
}

func TestGetAnalytics_ReturnsSummary(t *testing.T) {
	analytics := &mockAnalyticsService{summary: &services.Summary{
		Streak:       2,
		TotalEntries: 2,
		DominantMood: "Happy",
	}}
	ac := newApiFixture(&mockJournalService{}, analytics, signedIn(), newMockCache())

	rr := httptest.NewRecorder()
	ac.GetAnalytics(rr, httptest.NewRequest(http.MethodGet, "/analytics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var got services.Summary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, 2, got.Streak)
	assert.Equal(t, "Happy", got.DominantMood)
}

func TestGetWeekly_ReturnsCounts(t *testing.T) {
	analytics := &mockAnalyticsService{weekly: map[string]int{"Happy": 2, "Sad": 1}}
	ac := newApiFixture(&mockJournalService{}, analytics, signedIn(), newMockCache())

	rr := httptest.NewRecorder()
	ac.GetWeekly(rr, httptest.NewRequest(http.MethodGet, "/analytics/weekly", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var got map[string]int
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, 2, got["Happy"])
}

func TestGetMoods_NoSessionRequired(t *testing.T) {
	ac := newApiFixture(&mockJournalService{}, &mockAnalyticsService{}, &mockSessionService{}, newMockCache())

	rr := httptest.NewRecorder()
	ac.GetMoods(rr, httptest.NewRequest(http.MethodGet, "/moods", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var moods []models.Mood
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &moods))
	require.Len(t, moods, 5)
	assert.Equal(t, "Happy", moods[0].Name)
}
