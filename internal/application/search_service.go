// internal/application/search_service.go
package application

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/mahabubulhasibshawon/medico-pharmacy.git/internal/ports"
)

const (
	recentSearchesKey = "recentSearches"
	maxRecentSearches = 5
)

// SearchService keeps the recent-search list: most recent first,
// case-insensitively de-duplicated, capped at five entries.
type SearchService struct {
	kv ports.KeyValuePort
}

func NewSearchService(kv ports.KeyValuePort) *SearchService {
	return &SearchService{kv: kv}
}

func (s *SearchService) RecentSearches(ctx context.Context) ([]string, error) {
	raw, err := s.kv.Get(ctx, recentSearchesKey)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	var searches []string
	if err := json.Unmarshal([]byte(raw), &searches); err != nil {
		return nil, nil
	}
	return searches, nil
}

// AddSearch records query at the front of the list. An existing entry that
// matches case-insensitively is moved instead of duplicated. Blank queries
// are ignored.
func (s *SearchService) AddSearch(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	searches, err := s.RecentSearches(ctx)
	if err != nil {
		return err
	}

	kept := make([]string, 0, len(searches)+1)
	kept = append(kept, query)
	for _, existing := range searches {
		if !strings.EqualFold(existing, query) {
			kept = append(kept, existing)
		}
	}
	if len(kept) > maxRecentSearches {
		kept = kept[:maxRecentSearches]
	}

	raw, err := json.Marshal(kept)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, recentSearchesKey, string(raw))
}
