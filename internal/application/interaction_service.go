// internal/application/interaction_service.go
package application

import (
	"errors"

	"github.com/mahabubulhasibshawon/medico-pharmacy.git/internal/domain"
)

var (
	ErrMedicineNotSelected = errors.New("please select both medicines")
	ErrSameMedicine        = errors.New("please select two different medicines")
)

// UnknownMedicine is returned when a medicine id has no catalog entry, so
// display code never has to branch on a miss.
var UnknownMedicine = domain.Medicine{Name: "Unknown Medicine"}

// InteractionService answers pairwise drug-interaction lookups over the
// static catalog.
type InteractionService struct {
	medicines    []domain.Medicine
	interactions []domain.InteractionRecord
}

func NewInteractionService() *InteractionService {
	return &InteractionService{
		medicines:    domain.CatalogMedicines(),
		interactions: domain.CatalogInteractions(),
	}
}

// Medicines lists the catalog in its fixed order.
func (s *InteractionService) Medicines() []domain.Medicine {
	return s.medicines
}

// MedicineByID resolves an id, falling back to the UnknownMedicine
// placeholder rather than reporting a miss.
func (s *InteractionService) MedicineByID(id string) domain.Medicine {
	for _, m := range s.medicines {
		if m.ID == id {
			return m
		}
	}
	return UnknownMedicine
}

// CheckInteraction validates the selection and then looks the pair up.
// A nil record with nil error means no known interaction — the common,
// non-exceptional outcome.
func (s *InteractionService) CheckInteraction(idA, idB string) (*domain.InteractionRecord, error) {
	if idA == "" || idB == "" {
		return nil, ErrMedicineNotSelected
	}
	if idA == idB {
		return nil, ErrSameMedicine
	}
	return s.FindInteraction(idA, idB), nil
}

// FindInteraction scans for a record matching the unordered pair. First
// match wins; nil means no record exists.
func (s *InteractionService) FindInteraction(idA, idB string) *domain.InteractionRecord {
	for i := range s.interactions {
		if s.interactions[i].Matches(idA, idB) {
			return &s.interactions[i]
		}
	}
	return nil
}

// CommonInteractions returns the leading n records for the highlights
// section of the interactions page.
func (s *InteractionService) CommonInteractions(n int) []domain.InteractionRecord {
	if n > len(s.interactions) {
		n = len(s.interactions)
	}
	return s.interactions[:n]
}
