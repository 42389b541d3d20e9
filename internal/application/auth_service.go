// internal/application/auth_service.go
package application

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/mahabubulhasibshawon/medico-pharmacy.git/internal/adapters/remote"
	"github.com/mahabubulhasibshawon/medico-pharmacy.git/internal/domain"
	"github.com/mahabubulhasibshawon/medico-pharmacy.git/internal/ports"
	"github.com/mahabubulhasibshawon/medico-pharmacy.git/pkg/auth"
)

const minPasswordLen = 6

// AuthService validates sign-in/sign-up input, delegates to the mocked
// auth provider and keeps the single current-user record in the store.
// The provider accepts arbitrary non-empty credentials; that permissive
// behavior belongs to the mock and is not compensated for here.
type AuthService struct {
	provider ports.AuthPort
	kv       ports.KeyValuePort
}

func NewAuthService(provider ports.AuthPort, kv ports.KeyValuePort) *AuthService {
	return &AuthService{provider: provider, kv: kv}
}

func (s *AuthService) SignIn(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", errors.New("please enter both email and password")
	}
	user, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		return nil, "", err
	}
	if err := s.saveCurrentUser(ctx, user); err != nil {
		return nil, "", err
	}
	token, err := auth.GenerateToken(user.Email, user.UID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) SignUp(ctx context.Context, email, password, confirm string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", errors.New("please fill in all fields")
	}
	if len(password) < minPasswordLen {
		return nil, "", errors.New("password must be at least 6 characters")
	}
	if password != confirm {
		return nil, "", errors.New("passwords do not match")
	}
	user, err := s.provider.SignUp(ctx, email, password)
	if err != nil {
		return nil, "", err
	}
	if err := s.saveCurrentUser(ctx, user); err != nil {
		return nil, "", err
	}
	token, err := auth.GenerateToken(user.Email, user.UID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) SignOut(ctx context.Context) error {
	return s.provider.SignOut(ctx)
}

// CurrentUser returns the persisted session user, or nil when no session
// exists. A corrupt stored record reads as no session.
func (s *AuthService) CurrentUser(ctx context.Context) (*domain.User, error) {
	raw, err := s.kv.Get(ctx, remote.CurrentUserKey)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, nil
	}
	return &user, nil
}

func (s *AuthService) saveCurrentUser(ctx context.Context, user *domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, remote.CurrentUserKey, string(raw))
}
