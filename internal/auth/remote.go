package auth

import (
	"bytes"
	"context"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"mindtrackerd/internal/models"
	"mindtrackerd/internal/providers"
	"mindtrackerd/internal/structures"
)

const defaultAuthTimeout = 10 * time.Second

// RemoteAuthenticator forwards credentials to an external identity service
// over HTTP and maps provider outcomes into the shared Error shape.
type RemoteAuthenticator struct {
	endpoint string
	apiKey   string
	client   *http.Client
	logger   providers.Logger
}

func NewRemoteAuthenticator(conf *structures.Config, logger providers.Logger) *RemoteAuthenticator {
	timeout := conf.Auth.Timeout
	if timeout <= 0 {
		timeout = defaultAuthTimeout
	}
	return &RemoteAuthenticator{
		endpoint: conf.Auth.Endpoint,
		apiKey:   conf.Auth.APIKey,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type accountResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Error       string `json:"error"`
}

func (r *RemoteAuthenticator) SignIn(ctx context.Context, email, password string) (*models.Account, error) {
	return r.post(ctx, "/signin", email, password)
}

func (r *RemoteAuthenticator) SignUp(ctx context.Context, email, password string) (*models.Account, error) {
	return r.post(ctx, "/signup", email, password)
}

func (r *RemoteAuthenticator) post(ctx context.Context, path, email, password string) (*models.Account, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	body, err := json.Marshal(credentialsRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if r.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+r.apiKey)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Warnf(providers.TypeApp, "identity service unreachable: %s", err)
		return nil, &Error{Message: "identity service unreachable"}
	}
	defer resp.Body.Close()

	var decoded accountResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, &Error{Message: "unexpected response from identity service"}
	}

	if resp.StatusCode != http.StatusOK {
		msg := decoded.Error
		if msg == "" {
			msg = "authentication failed"
		}
		return nil, &Error{Message: msg}
	}

	return &models.Account{
		ID:          decoded.ID,
		DisplayName: decoded.DisplayName,
		Email:       decoded.Email,
	}, nil
}
