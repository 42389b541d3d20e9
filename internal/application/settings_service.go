// internal/application/settings_service.go
package application

import (
	"context"

	"github.com/mahabubulhasibshawon/medico-pharmacy.git/internal/ports"
)

const darkModeKey = "darkMode"

// SettingsService holds UI preferences that share the durable store with
// the core state.
type SettingsService struct {
	kv ports.KeyValuePort
}

func NewSettingsService(kv ports.KeyValuePort) *SettingsService {
	return &SettingsService{kv: kv}
}

func (s *SettingsService) DarkMode(ctx context.Context) (bool, error) {
	v, err := s.kv.Get(ctx, darkModeKey)
	if err != nil {
		return false, err
	}
	return v == "enabled", nil
}

func (s *SettingsService) SetDarkMode(ctx context.Context, enabled bool) error {
	v := "disabled"
	if enabled {
		v = "enabled"
	}
	return s.kv.Set(ctx, darkModeKey, v)
}
