package model

import (
	"errors"

	"github.com/google/uuid"
)

// RefKind tells whether an ItemRef points at a bare product or a specific variant.
type RefKind string

const (
	RefProduct RefKind = "product"
	RefVariant RefKind = "variant"
)

var ErrAmbiguousItemRef = errors.New("exactly one of product ID or variant ID must be set")

// ItemRef identifies what was sold or stocked: a bare product or a specific
// variant of one. Exactly one of the two; a variant implies its parent product.
type ItemRef struct {
	Kind RefKind
	ID   uuid.UUID
}

// NewItemRef builds an ItemRef from the two optional foreign keys, enforcing
// the exactly-one rule at construction time.
func NewItemRef(productID, variantID *uuid.UUID) (ItemRef, error) {
	hasProduct := productID != nil && *productID != uuid.Nil
	hasVariant := variantID != nil && *variantID != uuid.Nil
	switch {
	case hasVariant && !hasProduct:
		return ItemRef{Kind: RefVariant, ID: *variantID}, nil
	case hasProduct && !hasVariant:
		return ItemRef{Kind: RefProduct, ID: *productID}, nil
	default:
		return ItemRef{}, ErrAmbiguousItemRef
	}
}

func ProductRef(id uuid.UUID) ItemRef { return ItemRef{Kind: RefProduct, ID: id} }
func VariantRef(id uuid.UUID) ItemRef { return ItemRef{Kind: RefVariant, ID: id} }

// Key returns the aggregation map key, e.g. "variant:<id>" or "product:<id>".
// Duplicate order lines collapse onto this key.
func (r ItemRef) Key() string {
	return string(r.Kind) + ":" + r.ID.String()
}

func (r ItemRef) IsVariant() bool { return r.Kind == RefVariant }
