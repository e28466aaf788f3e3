package domain

// UnitStatus represents the occupancy state of a unit.
// All six ordered pairs of statuses are valid transitions; a unit can
// cycle between them indefinitely.
type UnitStatus string

const (
	UnitStatusVacant   UnitStatus = "vacant"
	UnitStatusOccupied UnitStatus = "occupied"
	UnitStatusRented   UnitStatus = "rented"
)

func (s UnitStatus) String() string { return string(s) }

func (s UnitStatus) IsValid() bool {
	switch s {
	case UnitStatusVacant, UnitStatusOccupied, UnitStatusRented:
		return true
	}
	return false
}

// UnitType represents the physical kind of a unit.
type UnitType string

const (
	UnitTypeApartment UnitType = "apartment"
	UnitTypeHouse     UnitType = "house"
)

func (t UnitType) String() string { return string(t) }

func (t UnitType) IsValid() bool {
	switch t {
	case UnitTypeApartment, UnitTypeHouse:
		return true
	}
	return false
}

// ContractType represents the rental contract category of a unit.
type ContractType string

const (
	ContractTypeResidential ContractType = "residential"
	ContractTypeCommercial  ContractType = "commercial"
	ContractTypeTemporary   ContractType = "temporary"
	ContractTypeIndefinite  ContractType = "indefinite"
)

func (t ContractType) String() string { return string(t) }

func (t ContractType) IsValid() bool {
	switch t {
	case ContractTypeResidential, ContractTypeCommercial, ContractTypeTemporary, ContractTypeIndefinite:
		return true
	}
	return false
}

// Relationship represents how a resident is tied to a unit.
type Relationship string

const (
	RelationshipOwner     Relationship = "owner"
	RelationshipTenant    Relationship = "tenant"
	RelationshipFamily    Relationship = "family"
	RelationshipDependent Relationship = "dependent"
	RelationshipGuest     Relationship = "guest"
)

func (r Relationship) String() string { return string(r) }

func (r Relationship) IsValid() bool {
	switch r {
	case RelationshipOwner, RelationshipTenant, RelationshipFamily,
		RelationshipDependent, RelationshipGuest:
		return true
	}
	return false
}

// ActionType represents the kind of mutation recorded in a unit's history.
type ActionType string

const (
	ActionResidentAdded               ActionType = "resident_added"
	ActionResidentRemoved             ActionType = "resident_removed"
	ActionResidentUpdated             ActionType = "resident_updated"
	ActionStatusChanged               ActionType = "status_changed"
	ActionOwnerChanged                ActionType = "owner_changed"
	ActionTenantChanged               ActionType = "tenant_changed"
	ActionFeeChanged                  ActionType = "fee_changed"
	ActionGeneralUpdate               ActionType = "general_update"
	ActionMaintenanceRequestCreated   ActionType = "maintenance_request_created"
	ActionMaintenanceRequestApproved  ActionType = "maintenance_request_approved"
	ActionMaintenanceRequestCompleted ActionType = "maintenance_request_completed"
	ActionMaintenanceRequestRejected  ActionType = "maintenance_request_rejected"
)

func (a ActionType) String() string { return string(a) }

func (a ActionType) IsValid() bool {
	switch a {
	case ActionResidentAdded, ActionResidentRemoved, ActionResidentUpdated,
		ActionStatusChanged, ActionOwnerChanged, ActionTenantChanged,
		ActionFeeChanged, ActionGeneralUpdate,
		ActionMaintenanceRequestCreated, ActionMaintenanceRequestApproved,
		ActionMaintenanceRequestCompleted, ActionMaintenanceRequestRejected:
		return true
	}
	return false
}
