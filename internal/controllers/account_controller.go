package controllers

import (
	"context"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"mindtrackerd/internal/models"
	"mindtrackerd/internal/providers"
	"mindtrackerd/internal/services"
	"mindtrackerd/internal/tracker/interfaces"
)

// AccountController covers everything tied to the current user: session
// lifecycle, entitlement transitions, the community feed and reminders.
type AccountController struct {
	logger      providers.Logger
	session     services.SessionServiceInterface
	entitlement services.EntitlementServiceInterface
	community   services.CommunityServiceInterface
	prefs       *models.Prefs
	notifier    interfaces.NotifierInterface
	scheduler   interfaces.SchedulerInterface
	cache       providers.CacheProviderInterface
}

func NewAccountController(logger providers.Logger, session services.SessionServiceInterface, entitlement services.EntitlementServiceInterface, community services.CommunityServiceInterface, prefs *models.Prefs, notifier interfaces.NotifierInterface, scheduler interfaces.SchedulerInterface, cache providers.CacheProviderInterface) *AccountController {
	return &AccountController{
		logger:      logger,
		session:     session,
		entitlement: entitlement,
		community:   community,
		prefs:       prefs,
		notifier:    notifier,
		scheduler:   scheduler,
		cache:       cache,
	}
}

func (ac *AccountController) requireSession(w http.ResponseWriter) bool {
	if ac.session.Current() == nil {
		http.Error(w, "Authentication Required", http.StatusUnauthorized)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	gson, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

type credentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (ac *AccountController) Login(w http.ResponseWriter, r *http.Request) {
	ac.establish(w, r, ac.session.Login)
}

func (ac *AccountController) Signup(w http.ResponseWriter, r *http.Request) {
	ac.establish(w, r, ac.session.Signup)
}

func (ac *AccountController) establish(w http.ResponseWriter, r *http.Request, call func(ctx context.Context, email, password string) (*models.Account, error)) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload credentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	account, err := call(r.Context(), payload.Email, payload.Password)
	if err != nil {
		// Auth failures are user-facing messages, never fatal.
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, account)
}

func (ac *AccountController) Logout(w http.ResponseWriter, r *http.Request) {
	ac.session.Logout()
	w.WriteHeader(http.StatusNoContent)
}

func (ac *AccountController) GetSession(w http.ResponseWriter, r *http.Request) {
	account := ac.session.Current()
	if account == nil {
		http.Error(w, "Authentication Required", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

type entitlementResponse struct {
	Status      models.EntitlementStatus `json:"status"`
	CheckoutURL string                   `json:"checkout_url,omitempty"`
}

func (ac *AccountController) BeginUpgrade(w http.ResponseWriter, r *http.Request) {
	if !ac.requireSession(w) {
		return
	}
	status, url := ac.entitlement.BeginUpgrade()
	ac.logger.Debugf(providers.GetLogTypeByRequestType(r.Method), "Upgrade requested, status=%s", status)
	writeJSON(w, http.StatusOK, entitlementResponse{Status: status, CheckoutURL: url})
}

func (ac *AccountController) ConfirmPurchase(w http.ResponseWriter, r *http.Request) {
	if !ac.requireSession(w) {
		return
	}
	status := ac.entitlement.ConfirmPurchase()
	writeJSON(w, http.StatusOK, entitlementResponse{Status: status})
}

func (ac *AccountController) GetEntitlement(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, entitlementResponse{Status: ac.entitlement.Status()})
}

func (ac *AccountController) GetCommunity(w http.ResponseWriter, r *http.Request) {
	if !ac.requireSession(w) {
		return
	}
	if data, ok := ac.cache.Get("feed"); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}
	posts := ac.community.Posts()
	gson, err := json.Marshal(posts)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ac.cache.Set("feed", gson)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

type addPostRequest struct {
	Text string `json:"text"`
}

type addPostResponse struct {
	Accepted bool                  `json:"accepted"`
	Post     *models.CommunityPost `json:"post,omitempty"`
}

func (ac *AccountController) AddPost(w http.ResponseWriter, r *http.Request) {
	if !ac.requireSession(w) {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload addPostRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	post, ok := ac.community.AddPost(models.AnonymousAuthor, payload.Text, time.Now())
	if !ok {
		// Rejection is part of the contract, not an error.
		writeJSON(w, http.StatusOK, addPostResponse{Accepted: false})
		return
	}
	ac.cache.Del("feed")
	ac.logger.Debugf(providers.GetLogTypeByRequestType(r.Method), "Community post %s accepted", post.ID)
	writeJSON(w, http.StatusCreated, addPostResponse{Accepted: true, Post: post})
}

type notificationsResponse struct {
	Enabled bool `json:"enabled"`
}

func (ac *AccountController) EnableNotifications(w http.ResponseWriter, r *http.Request) {
	if !ac.requireSession(w) {
		return
	}

	granted, err := ac.notifier.RequestPermission(r.Context())
	if err != nil || !granted {
		// Refused permission degrades to reminders staying off.
		ac.prefs.SetNotifications(false)
		writeJSON(w, http.StatusOK, notificationsResponse{Enabled: false})
		return
	}

	ac.prefs.SetNotifications(true)
	ac.scheduler.EnableReminder()
	if err := ac.scheduler.Persist(); err != nil {
		ac.logger.Errorf(providers.TypeApp, "Notification preference not persisted: %s", err)
	}
	writeJSON(w, http.StatusOK, notificationsResponse{Enabled: true})
}
