package inventory

import (
	"errors"

	"github.com/google/uuid"
)

var ErrListingRequired = errors.New("listing id is required")

// Scope identifies the unit whose calendar is being managed: a listing,
// optionally narrowed to a variant and a bookable slot definition.
//
// Absent dimensions are canonicalized to uuid.Nil and stored that way, so a
// nil variant always means "the unscoped default variant" and never acts as
// a wildcard in query predicates.
type Scope struct {
	listingID uuid.UUID
	variantID uuid.UUID
	slotID    uuid.UUID
}

func NewScope(listingID uuid.UUID, variantID, slotID *uuid.UUID) (Scope, error) {
	if listingID == uuid.Nil {
		return Scope{}, ErrListingRequired
	}
	s := Scope{listingID: listingID}
	if variantID != nil {
		s.variantID = *variantID
	}
	if slotID != nil {
		s.slotID = *slotID
	}
	return s, nil
}

// ScopeFrom rebuilds a scope from already-canonicalized storage columns.
func ScopeFrom(listingID, variantID, slotID uuid.UUID) Scope {
	return Scope{listingID: listingID, variantID: variantID, slotID: slotID}
}

func (s Scope) ListingID() uuid.UUID {
	return s.listingID
}

func (s Scope) VariantID() uuid.UUID {
	return s.variantID
}

func (s Scope) SlotID() uuid.UUID {
	return s.slotID
}

func (s Scope) VariantIDPtr() *uuid.UUID {
	if s.variantID == uuid.Nil {
		return nil
	}
	id := s.variantID
	return &id
}

func (s Scope) SlotIDPtr() *uuid.UUID {
	if s.slotID == uuid.Nil {
		return nil
	}
	id := s.slotID
	return &id
}

func (s Scope) Key() string {
	return s.listingID.String() + "/" + s.variantID.String() + "/" + s.slotID.String()
}
