// internal/application/search_service_test.go
package application

import (
	"context"
	"reflect"
	"testing"

	"github.com/mahabubulhasibshawon/medico-pharmacy.git/internal/adapters/localstore"
)

func TestSearchService_AddSearch(t *testing.T) {
	svc := NewSearchService(localstore.NewStore(""))
	ctx := context.Background()

	for _, q := range []string{"aspirin", "ibuprofen", "Aspirin"} {
		if err := svc.AddSearch(ctx, q); err != nil {
			t.Fatalf("AddSearch(%q) unexpected error: %v", q, err)
		}
	}

	searches, err := svc.RecentSearches(ctx)
	if err != nil {
		t.Fatalf("RecentSearches() unexpected error: %v", err)
	}
	// case-insensitive dedupe keeps one entry, moved to the front
	want := []string{"Aspirin", "ibuprofen"}
	if !reflect.DeepEqual(searches, want) {
		t.Errorf("RecentSearches() = %v, want %v", searches, want)
	}
}

func TestSearchService_CapsAtFive(t *testing.T) {
	svc := NewSearchService(localstore.NewStore(""))
	ctx := context.Background()

	for _, q := range []string{"a", "b", "c", "d", "e", "f"} {
		if err := svc.AddSearch(ctx, q); err != nil {
			t.Fatal(err)
		}
	}

	searches, _ := svc.RecentSearches(ctx)
	want := []string{"f", "e", "d", "c", "b"}
	if !reflect.DeepEqual(searches, want) {
		t.Errorf("RecentSearches() = %v, want newest five %v", searches, want)
	}
}

func TestSearchService_IgnoresBlankQueries(t *testing.T) {
	svc := NewSearchService(localstore.NewStore(""))
	ctx := context.Background()

	if err := svc.AddSearch(ctx, "   "); err != nil {
		t.Fatalf("AddSearch() unexpected error: %v", err)
	}
	searches, _ := svc.RecentSearches(ctx)
	if len(searches) != 0 {
		t.Errorf("RecentSearches() = %v, want empty", searches)
	}
}

func TestSearchService_CorruptStateReadsEmpty(t *testing.T) {
	kv := localstore.NewStore("")
	svc := NewSearchService(kv)
	ctx := context.Background()

	if err := kv.Set(ctx, recentSearchesKey, "[broken"); err != nil {
		t.Fatal(err)
	}
	searches, err := svc.RecentSearches(ctx)
	if err != nil {
		t.Fatalf("RecentSearches() unexpected error: %v", err)
	}
	if len(searches) != 0 {
		t.Errorf("RecentSearches() = %v from corrupt state, want empty", searches)
	}
}
