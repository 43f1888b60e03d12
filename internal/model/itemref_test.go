package model

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewItemRefExactlyOne(t *testing.T) {
	productID := uuid.New()
	variantID := uuid.New()
	nilID := uuid.Nil

	ref, err := NewItemRef(&productID, nil)
	if err != nil {
		t.Fatalf("product only: %v", err)
	}
	if ref.Kind != RefProduct || ref.ID != productID {
		t.Errorf("ref = %+v, want product %s", ref, productID)
	}

	ref, err = NewItemRef(nil, &variantID)
	if err != nil {
		t.Fatalf("variant only: %v", err)
	}
	if ref.Kind != RefVariant || ref.ID != variantID {
		t.Errorf("ref = %+v, want variant %s", ref, variantID)
	}

	if _, err := NewItemRef(&productID, &variantID); err == nil {
		t.Error("both ids set: expected error")
	}
	if _, err := NewItemRef(nil, nil); err == nil {
		t.Error("neither id set: expected error")
	}
	// A pointer to the zero uuid counts as unset.
	if _, err := NewItemRef(&nilID, &nilID); err == nil {
		t.Error("zero uuids: expected error")
	}
	if ref, err := NewItemRef(&productID, &nilID); err != nil || ref.Kind != RefProduct {
		t.Errorf("zero variant id should fall through to product, got %+v, %v", ref, err)
	}
}

func TestItemRefKey(t *testing.T) {
	id := uuid.New()
	if got, want := VariantRef(id).Key(), "variant:"+id.String(); got != want {
		t.Errorf("Key() = %q, want %q", got, want)
	}
	if got, want := ProductRef(id).Key(), "product:"+id.String(); got != want {
		t.Errorf("Key() = %q, want %q", got, want)
	}
	if ProductRef(id).IsVariant() {
		t.Error("product ref reported as variant")
	}
	if !VariantRef(id).IsVariant() {
		t.Error("variant ref not reported as variant")
	}
}

func TestOrderItemRefPrefersVariant(t *testing.T) {
	productID := uuid.New()
	variantID := uuid.New()

	item := OrderItem{ProductID: &productID, VariantID: &variantID}
	ref, ok := item.Ref()
	if !ok {
		t.Fatal("expected a ref")
	}
	if ref != VariantRef(variantID) {
		t.Errorf("ref = %+v, want variant %s", ref, variantID)
	}

	item = OrderItem{ProductID: &productID}
	if ref, ok := item.Ref(); !ok || ref != ProductRef(productID) {
		t.Errorf("ref = %+v, ok = %v, want product %s", ref, ok, productID)
	}

	item = OrderItem{}
	if _, ok := item.Ref(); ok {
		t.Error("empty item should have no ref")
	}
}

func TestProductStockRefPrefersVariant(t *testing.T) {
	productID := uuid.New()
	variantID := uuid.New()

	stock := ProductStock{ProductID: &productID, VariantID: &variantID}
	if ref, ok := stock.Ref(); !ok || ref != VariantRef(variantID) {
		t.Errorf("ref = %+v, ok = %v, want variant %s", ref, ok, variantID)
	}
}

func TestOrderTotalAmount(t *testing.T) {
	order := Order{Subtotal: 100000, TaxAmount: 11000, DiscountAmount: 5000}
	if got := order.TotalAmount(); got != 106000 {
		t.Errorf("TotalAmount() = %d, want 106000", got)
	}
}
