// internal/application/interaction_service_test.go
package application

import (
	"errors"
	"testing"

	"github.com/mahabubulhasibshawon/medico-pharmacy.git/internal/domain"
)

func TestInteractionService_CheckInteraction(t *testing.T) {
	svc := NewInteractionService()

	tests := []struct {
		name         string
		idA          string
		idB          string
		wantErr      error
		wantFound    bool
		wantSeverity domain.Severity
	}{
		{
			name:         "Known pair",
			idA:          "med002",
			idB:          "med006",
			wantFound:    true,
			wantSeverity: domain.SeveritySevere,
		},
		{
			name:         "Known pair reversed returns the same record",
			idA:          "med006",
			idB:          "med002",
			wantFound:    true,
			wantSeverity: domain.SeveritySevere,
		},
		{
			name: "No record for the pair",
			idA:  "med001",
			idB:  "med002",
		},
		{
			name:    "Empty selection rejected",
			idA:     "",
			idB:     "med002",
			wantErr: ErrMedicineNotSelected,
		},
		{
			name:    "Self pair rejected before lookup",
			idA:     "med001",
			idB:     "med001",
			wantErr: ErrSameMedicine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := svc.CheckInteraction(tt.idA, tt.idB)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("CheckInteraction() err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CheckInteraction() unexpected error: %v", err)
			}
			if tt.wantFound != (record != nil) {
				t.Fatalf("CheckInteraction() record = %v, want found=%v", record, tt.wantFound)
			}
			if record != nil && record.Severity != tt.wantSeverity {
				t.Errorf("CheckInteraction() severity = %v, want %v", record.Severity, tt.wantSeverity)
			}
		})
	}
}

func TestInteractionService_SymmetricLookupSameRecord(t *testing.T) {
	svc := NewInteractionService()
	forward := svc.FindInteraction("med002", "med006")
	backward := svc.FindInteraction("med006", "med002")
	if forward == nil || backward == nil {
		t.Fatal("FindInteraction() returned nil for a known pair")
	}
	if forward != backward {
		t.Error("FindInteraction() must return the same record for both orderings")
	}
}

func TestInteractionService_MedicineByID(t *testing.T) {
	svc := NewInteractionService()

	if got := svc.MedicineByID("med006"); got.Name != "Aspirin" {
		t.Errorf("MedicineByID(med006) = %v, want Aspirin", got.Name)
	}
	if got := svc.MedicineByID("med999"); got.Name != "Unknown Medicine" {
		t.Errorf("MedicineByID(med999) = %v, want Unknown Medicine placeholder", got.Name)
	}
}

func TestInteractionService_CommonInteractions(t *testing.T) {
	svc := NewInteractionService()
	common := svc.CommonInteractions(3)
	if len(common) != 3 {
		t.Fatalf("CommonInteractions(3) = %d records, want 3", len(common))
	}
	if common[0].Medicine1 != "med001" || common[0].Medicine2 != "med006" {
		t.Errorf("CommonInteractions() first record = %+v, want catalog order preserved", common[0])
	}
	if got := svc.CommonInteractions(100); len(got) != len(svc.interactions) {
		t.Errorf("CommonInteractions(100) = %d records, want the whole list", len(got))
	}
}
