package auth

import (
	"context"

	"mindtrackerd/internal/models"
)

// MockAuthenticator is the zero-friction demo backend: every sign-in and
// sign-up succeeds with the same fixed identity.
type MockAuthenticator struct{}

func NewMockAuthenticator() *MockAuthenticator {
	return &MockAuthenticator{}
}

func demoAccount() *models.Account {
	return &models.Account{
		ID:          "demo-user",
		DisplayName: "Demo User",
		Email:       "demo@mindtracker.app",
	}
}

func (m *MockAuthenticator) SignIn(_ context.Context, _, _ string) (*models.Account, error) {
	return demoAccount(), nil
}

func (m *MockAuthenticator) SignUp(ctx context.Context, email, password string) (*models.Account, error) {
	return m.SignIn(ctx, email, password)
}
