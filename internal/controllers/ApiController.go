package controllers

import (
	"errors"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"

	"mindtrackerd/internal/models"
	"mindtrackerd/internal/providers"
	"mindtrackerd/internal/services"
)

const maxRequestBodySize = 1 << 20 // 1 MB

const defaultRecentLimit = 5

type ApiController struct {
	logger    providers.Logger
	journal   services.JournalServiceInterface
	analytics services.AnalyticsServiceInterface
	session   services.SessionServiceInterface
	cache     providers.CacheProviderInterface
}

func NewApiController(logger providers.Logger, journal services.JournalServiceInterface, analytics services.AnalyticsServiceInterface, session services.SessionServiceInterface, cache providers.CacheProviderInterface) *ApiController {
	return &ApiController{
		logger:    logger,
		journal:   journal,
		analytics: analytics,
		session:   session,
		cache:     cache,
	}
}

func (ac *ApiController) requireSession(w http.ResponseWriter) bool {
	if ac.session.Current() == nil {
		http.Error(w, "Authentication Required", http.StatusUnauthorized)
		return false
	}
	return true
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

// invalidateDerived drops every cached view the journal feeds, so a save is
// visible on the next read.
func (ac *ApiController) invalidateDerived() {
	for _, key := range []string{"entries", "recent:5", "analytics", "weekly"} {
		ac.cache.Del(key)
	}
}

type saveEntryRequest struct {
	Text string `json:"text"`
	Mood string `json:"mood"`
}

func (ac *ApiController) SaveEntry(w http.ResponseWriter, r *http.Request) {
	if !ac.requireSession(w) {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload saveEntryRequest
	err := json.NewDecoder(r.Body).Decode(&payload)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	entry, err := ac.journal.SaveEntry(payload.Text, payload.Mood, time.Now())
	if err != nil {
		if errors.Is(err, services.ErrEmptyText) || errors.Is(err, services.ErrUnknownMood) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ac.invalidateDerived()
	ac.logger.Debugf(providers.GetLogTypeByRequestType(r.Method), "Saved entry for %s", entry.CreatedAt.Format(models.DateLayout))

	gson, err := json.Marshal(entry)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write(gson)
}

func (ac *ApiController) GetEntries(w http.ResponseWriter, r *http.Request) {
	if !ac.requireSession(w) {
		return
	}
	ac.serveFromCacheOrCompute(w, "entries", func() (any, error) {
		return ac.journal.Entries(), nil
	})
}

func (ac *ApiController) GetRecentEntries(w http.ResponseWriter, r *http.Request) {
	if !ac.requireSession(w) {
		return
	}
	limit := cast.ToInt(r.URL.Query().Get("n"))
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	ac.serveFromCacheOrCompute(w, "recent:"+cast.ToString(limit), func() (any, error) {
		return ac.analytics.Recent(limit), nil
	})
}

func (ac *ApiController) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	if !ac.requireSession(w) {
		return
	}
	ac.serveFromCacheOrCompute(w, "analytics", func() (any, error) {
		return ac.analytics.Summary(time.Now()), nil
	})
}

func (ac *ApiController) GetWeekly(w http.ResponseWriter, r *http.Request) {
	if !ac.requireSession(w) {
		return
	}
	ac.serveFromCacheOrCompute(w, "weekly", func() (any, error) {
		return ac.analytics.Weekly(time.Now()), nil
	})
}

// GetMoods serves the static mood reference set. No session required.
func (ac *ApiController) GetMoods(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "moods", func() (any, error) {
		return models.Moods, nil
	})
}
