package occupancy

import (
	"testing"

	"github.com/condoview/condoview-backend/internal/domain"
)

func TestUnitDiff_OnlyChangedFields(t *testing.T) {
	t.Parallel()

	before := makeUnit(domain.UnitStatusVacant)
	after := before
	after.Bedrooms = 3
	after.Block = ptrString("B")

	oldVals, newVals := unitDiff(before, after)

	if len(newVals) != 2 {
		t.Fatalf("expected 2 changed fields, got %d: %v", len(newVals), newVals)
	}
	if oldVals["bedrooms"] != 2 || newVals["bedrooms"] != 3 {
		t.Errorf("bedrooms diff wrong: old=%v new=%v", oldVals["bedrooms"], newVals["bedrooms"])
	}
	if oldVals["block"] != nil || newVals["block"] != "B" {
		t.Errorf("block diff wrong: old=%v new=%v", oldVals["block"], newVals["block"])
	}
}

func TestUnitDiff_Identical(t *testing.T) {
	t.Parallel()

	u := makeUnit(domain.UnitStatusOccupied)
	oldVals, newVals := unitDiff(u, u)
	if len(oldVals) != 0 || len(newVals) != 0 {
		t.Fatalf("expected empty diff, got old=%v new=%v", oldVals, newVals)
	}
}

func TestClassifyUnitChange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		vals domain.Changes
		want domain.ActionType
	}{
		{"owner fields only", domain.Changes{"owner_name": "a", "owner_phone": "b"}, domain.ActionOwnerChanged},
		{"fee fields only", domain.Changes{"condominium_fee": 500.0}, domain.ActionFeeChanged},
		{"billing fields only", domain.Changes{"monthly_amount": 1200.0, "auto_billing_enabled": true}, domain.ActionFeeChanged},
		{"owner plus fee", domain.Changes{"owner_name": "a", "condominium_fee": 500.0}, domain.ActionGeneralUpdate},
		{"structural", domain.Changes{"bedrooms": 3}, domain.ActionGeneralUpdate},
		{"empty", domain.Changes{}, domain.ActionGeneralUpdate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := classifyUnitChange(tt.vals); got != tt.want {
				t.Errorf("classifyUnitChange(%v) = %v, want %v", tt.vals, got, tt.want)
			}
		})
	}
}

func TestResidentSnapshot_OmitsUnsetOptionals(t *testing.T) {
	t.Parallel()

	res := makeResident(makeUnit(domain.UnitStatusVacant).ID)
	snap := residentSnapshot(res)

	if snap["cpf"] != res.CPF {
		t.Errorf("cpf = %v, want %v", snap["cpf"], res.CPF)
	}
	if _, ok := snap["email"]; ok {
		t.Error("unset email should be omitted from the snapshot")
	}

	res.Email = ptrString("maria@example.com")
	snap = residentSnapshot(res)
	if snap["email"] != "maria@example.com" {
		t.Errorf("email = %v", snap["email"])
	}
}
