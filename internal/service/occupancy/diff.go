package occupancy

import (
	"time"

	"github.com/condoview/condoview-backend/internal/domain"
)

// ptrEq compares two pointers by pointed-to value.
func ptrEq[T comparable](a, b *T) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || *a == *b
}

func timePtrEq(a, b *time.Time) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || a.Equal(*b)
}

// deref returns the pointed-to value or nil, suitable for a Changes map.
func deref[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func timeVal(p *time.Time) any {
	if p == nil {
		return nil
	}
	return p.Format(time.DateOnly)
}

// setChange records one changed field in both diff maps.
func setChange(old, new domain.Changes, field string, oldVal, newVal any) {
	old[field] = oldVal
	new[field] = newVal
}

// unitDiff returns the changed fields of a unit as old/new snapshots.
// Only fields that actually differ appear, keeping the audit log compact.
func unitDiff(before, after domain.Unit) (domain.Changes, domain.Changes) {
	oldVals := domain.Changes{}
	newVals := domain.Changes{}

	if before.Number != after.Number {
		setChange(oldVals, newVals, "number", before.Number, after.Number)
	}
	if !ptrEq(before.Block, after.Block) {
		setChange(oldVals, newVals, "block", deref(before.Block), deref(after.Block))
	}
	if !ptrEq(before.Floor, after.Floor) {
		setChange(oldVals, newVals, "floor", deref(before.Floor), deref(after.Floor))
	}
	if before.UnitType != after.UnitType {
		setChange(oldVals, newVals, "unit_type", before.UnitType, after.UnitType)
	}
	if before.Bedrooms != after.Bedrooms {
		setChange(oldVals, newVals, "bedrooms", before.Bedrooms, after.Bedrooms)
	}
	if before.Bathrooms != after.Bathrooms {
		setChange(oldVals, newVals, "bathrooms", before.Bathrooms, after.Bathrooms)
	}
	if !ptrEq(before.Area, after.Area) {
		setChange(oldVals, newVals, "area", deref(before.Area), deref(after.Area))
	}
	if before.Status != after.Status {
		setChange(oldVals, newVals, "status", before.Status, after.Status)
	}
	if before.CondominiumFee != after.CondominiumFee {
		setChange(oldVals, newVals, "condominium_fee", before.CondominiumFee, after.CondominiumFee)
	}
	if !ptrEq(before.OwnerName, after.OwnerName) {
		setChange(oldVals, newVals, "owner_name", deref(before.OwnerName), deref(after.OwnerName))
	}
	if !ptrEq(before.OwnerEmail, after.OwnerEmail) {
		setChange(oldVals, newVals, "owner_email", deref(before.OwnerEmail), deref(after.OwnerEmail))
	}
	if !ptrEq(before.OwnerPhone, after.OwnerPhone) {
		setChange(oldVals, newVals, "owner_phone", deref(before.OwnerPhone), deref(after.OwnerPhone))
	}
	if !ptrEq(before.ResidentUserID, after.ResidentUserID) {
		setChange(oldVals, newVals, "resident_user_id", deref(before.ResidentUserID), deref(after.ResidentUserID))
	}
	if !ptrEq(before.MonthlyAmount, after.MonthlyAmount) {
		setChange(oldVals, newVals, "monthly_amount", deref(before.MonthlyAmount), deref(after.MonthlyAmount))
	}
	if !ptrEq(before.PaymentDueDay, after.PaymentDueDay) {
		setChange(oldVals, newVals, "payment_due_day", deref(before.PaymentDueDay), deref(after.PaymentDueDay))
	}
	if before.AutoBillingEnabled != after.AutoBillingEnabled {
		setChange(oldVals, newVals, "auto_billing_enabled", before.AutoBillingEnabled, after.AutoBillingEnabled)
	}
	if !timePtrEq(before.ContractStartDate, after.ContractStartDate) {
		setChange(oldVals, newVals, "contract_start_date", timeVal(before.ContractStartDate), timeVal(after.ContractStartDate))
	}
	if !timePtrEq(before.ContractEndDate, after.ContractEndDate) {
		setChange(oldVals, newVals, "contract_end_date", timeVal(before.ContractEndDate), timeVal(after.ContractEndDate))
	}
	if !ptrEq(before.ContractType, after.ContractType) {
		setChange(oldVals, newVals, "contract_type", deref(before.ContractType), deref(after.ContractType))
	}
	if !ptrEq(before.DepositAmount, after.DepositAmount) {
		setChange(oldVals, newVals, "deposit_amount", deref(before.DepositAmount), deref(after.DepositAmount))
	}
	if !ptrEq(before.GuarantorName, after.GuarantorName) {
		setChange(oldVals, newVals, "guarantor_name", deref(before.GuarantorName), deref(after.GuarantorName))
	}
	if !ptrEq(before.GuarantorCPF, after.GuarantorCPF) {
		setChange(oldVals, newVals, "guarantor_cpf", deref(before.GuarantorCPF), deref(after.GuarantorCPF))
	}
	if !ptrEq(before.GuarantorPhone, after.GuarantorPhone) {
		setChange(oldVals, newVals, "guarantor_phone", deref(before.GuarantorPhone), deref(after.GuarantorPhone))
	}
	if before.AutoRenewal != after.AutoRenewal {
		setChange(oldVals, newVals, "auto_renewal", before.AutoRenewal, after.AutoRenewal)
	}
	if before.ParkingSpots != after.ParkingSpots {
		setChange(oldVals, newVals, "parking_spots", before.ParkingSpots, after.ParkingSpots)
	}
	if before.Furnished != after.Furnished {
		setChange(oldVals, newVals, "furnished", before.Furnished, after.Furnished)
	}
	if before.PetAllowed != after.PetAllowed {
		setChange(oldVals, newVals, "pet_allowed", before.PetAllowed, after.PetAllowed)
	}
	if before.Balcony != after.Balcony {
		setChange(oldVals, newVals, "balcony", before.Balcony, after.Balcony)
	}
	if !timePtrEq(before.LastRenovationDate, after.LastRenovationDate) {
		setChange(oldVals, newVals, "last_renovation_date", timeVal(before.LastRenovationDate), timeVal(after.LastRenovationDate))
	}

	return oldVals, newVals
}

// residentDiff returns the changed fields of a resident as old/new snapshots.
func residentDiff(before, after domain.Resident) (domain.Changes, domain.Changes) {
	oldVals := domain.Changes{}
	newVals := domain.Changes{}

	if before.Name != after.Name {
		setChange(oldVals, newVals, "name", before.Name, after.Name)
	}
	if !ptrEq(before.RG, after.RG) {
		setChange(oldVals, newVals, "rg", deref(before.RG), deref(after.RG))
	}
	if !ptrEq(before.Email, after.Email) {
		setChange(oldVals, newVals, "email", deref(before.Email), deref(after.Email))
	}
	if !ptrEq(before.Phone, after.Phone) {
		setChange(oldVals, newVals, "phone", deref(before.Phone), deref(after.Phone))
	}
	if !timePtrEq(before.BirthDate, after.BirthDate) {
		setChange(oldVals, newVals, "birth_date", timeVal(before.BirthDate), timeVal(after.BirthDate))
	}
	if before.Relationship != after.Relationship {
		setChange(oldVals, newVals, "relationship", before.Relationship, after.Relationship)
	}
	if before.IsMainResident != after.IsMainResident {
		setChange(oldVals, newVals, "is_main_resident", before.IsMainResident, after.IsMainResident)
	}
	if !ptrEq(before.EmergencyContactName, after.EmergencyContactName) {
		setChange(oldVals, newVals, "emergency_contact_name", deref(before.EmergencyContactName), deref(after.EmergencyContactName))
	}
	if !ptrEq(before.EmergencyContactPhone, after.EmergencyContactPhone) {
		setChange(oldVals, newVals, "emergency_contact_phone", deref(before.EmergencyContactPhone), deref(after.EmergencyContactPhone))
	}
	if !ptrEq(before.UserID, after.UserID) {
		setChange(oldVals, newVals, "user_id", deref(before.UserID), deref(after.UserID))
	}

	return oldVals, newVals
}

// residentSnapshot captures a resident's set fields for a resident_added
// entry. Unset optionals are omitted rather than recorded as null.
func residentSnapshot(res domain.Resident) domain.Changes {
	snap := domain.Changes{
		"cpf":              res.CPF,
		"name":             res.Name,
		"relationship":     res.Relationship,
		"is_main_resident": res.IsMainResident,
	}
	if res.Email != nil {
		snap["email"] = *res.Email
	}
	if res.Phone != nil {
		snap["phone"] = *res.Phone
	}
	if res.MoveInDate != nil {
		snap["move_in_date"] = res.MoveInDate.Format(time.DateOnly)
	}
	if res.UserID != nil {
		snap["user_id"] = *res.UserID
	}
	return snap
}

// classifyUnitChange maps a unit diff to the most specific action type:
// owner contact changes and billing/fee changes get their own types, the
// rest is a general update.
func classifyUnitChange(newVals domain.Changes) domain.ActionType {
	ownerOnly := true
	feeOnly := true
	for field := range newVals {
		switch field {
		case "owner_name", "owner_email", "owner_phone":
			feeOnly = false
		case "condominium_fee", "monthly_amount", "payment_due_day", "auto_billing_enabled":
			ownerOnly = false
		default:
			ownerOnly = false
			feeOnly = false
		}
	}
	switch {
	case len(newVals) == 0:
		return domain.ActionGeneralUpdate
	case ownerOnly:
		return domain.ActionOwnerChanged
	case feeOnly:
		return domain.ActionFeeChanged
	default:
		return domain.ActionGeneralUpdate
	}
}
