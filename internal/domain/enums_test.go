package domain

import "testing"

func TestUnitStatus_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status UnitStatus
		want   bool
	}{
		{UnitStatusVacant, true},
		{UnitStatusOccupied, true},
		{UnitStatusRented, true},
		{UnitStatus("demolished"), false},
		{UnitStatus(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			t.Parallel()
			if got := tt.status.IsValid(); got != tt.want {
				t.Errorf("UnitStatus(%q).IsValid() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestRelationship_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rel  Relationship
		want bool
	}{
		{RelationshipOwner, true},
		{RelationshipTenant, true},
		{RelationshipFamily, true},
		{RelationshipDependent, true},
		{RelationshipGuest, true},
		{Relationship("roommate"), false},
		{Relationship(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.rel), func(t *testing.T) {
			t.Parallel()
			if got := tt.rel.IsValid(); got != tt.want {
				t.Errorf("Relationship(%q).IsValid() = %v, want %v", tt.rel, got, tt.want)
			}
		})
	}
}

func TestContractType_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ct   ContractType
		want bool
	}{
		{ContractTypeResidential, true},
		{ContractTypeCommercial, true},
		{ContractTypeTemporary, true},
		{ContractTypeIndefinite, true},
		{ContractType("seasonal"), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.ct), func(t *testing.T) {
			t.Parallel()
			if got := tt.ct.IsValid(); got != tt.want {
				t.Errorf("ContractType(%q).IsValid() = %v, want %v", tt.ct, got, tt.want)
			}
		})
	}
}

func TestActionType_IsValid(t *testing.T) {
	t.Parallel()

	valid := []ActionType{
		ActionResidentAdded, ActionResidentRemoved, ActionResidentUpdated,
		ActionStatusChanged, ActionOwnerChanged, ActionTenantChanged,
		ActionFeeChanged, ActionGeneralUpdate,
		ActionMaintenanceRequestCreated, ActionMaintenanceRequestApproved,
		ActionMaintenanceRequestCompleted, ActionMaintenanceRequestRejected,
	}
	for _, a := range valid {
		if !a.IsValid() {
			t.Errorf("ActionType(%q).IsValid() = false, want true", a)
		}
	}
	if ActionType("unit_painted").IsValid() {
		t.Error("unknown action type reported valid")
	}
}
