package service

import (
	"testing"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository/memory"

	"github.com/google/uuid"
)

// fixture seeds a memory store with a small catalog:
//   - "Americano", no variants, price 15000, product-level stock 10 at the branch
//   - "Tee" with variants S (price 50000, stock 3) and M (price 60000, stock 5),
//     no product-level stock row
type fixture struct {
	store    *memory.Store
	branchID uuid.UUID

	americano *model.Product
	tee       *model.Product
	teeS      model.ProductVariant
	teeM      model.ProductVariant

	americanoStock *model.ProductStock
	teeSStock      *model.ProductStock
	teeMStock      *model.ProductStock

	customer *model.Customer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		store:    memory.NewStore(),
		branchID: uuid.New(),
	}

	f.americano = &model.Product{Name: "Americano", Slug: "americano", Price: 15000}
	if err := f.store.Products().Create(f.americano); err != nil {
		t.Fatalf("seed americano: %v", err)
	}

	f.tee = &model.Product{
		Name: "Tee",
		Slug: "tee",
		Variants: []model.ProductVariant{
			{Name: "S", SKU: "TEE-S", Price: 50000},
			{Name: "M", SKU: "TEE-M", Price: 60000},
		},
	}
	if err := f.store.Products().Create(f.tee); err != nil {
		t.Fatalf("seed tee: %v", err)
	}
	f.teeS = f.tee.Variants[0]
	f.teeM = f.tee.Variants[1]

	f.americanoStock = f.seedStock(t, &f.americano.ID, nil, 10)
	f.teeSStock = f.seedStock(t, &f.tee.ID, &f.teeS.ID, 3)
	f.teeMStock = f.seedStock(t, &f.tee.ID, &f.teeM.ID, 5)

	f.customer = &model.Customer{Name: "Budi", Phone: "0812", Address: "Jl. Merdeka 1", City: "Jakarta", Country: "ID"}
	if err := f.store.Customers().Create(f.customer); err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return f
}

func (f *fixture) seedStock(t *testing.T, productID, variantID *uuid.UUID, qty int) *model.ProductStock {
	t.Helper()
	stock := &model.ProductStock{
		ProductID: productID,
		VariantID: variantID,
		BranchID:  f.branchID,
		Stock:     qty,
	}
	if err := f.store.Stocks().Create(stock); err != nil {
		t.Fatalf("seed stock: %v", err)
	}
	return stock
}

func (f *fixture) orderService() OrderService {
	return NewOrderService(f.store, f.store.Orders(), f.store.Products(), f.store.Variants(), f.store.Customers(), f.store.Stocks())
}

func (f *fixture) paymentService() PaymentService {
	return NewPaymentService(f.store, f.store.Orders(), f.store.Payments(), nil)
}

func (f *fixture) stockService() StockService {
	return NewStockService(f.store, f.store.Stocks(), f.store.Movements(), f.store.Batches(), f.store.Products(), f.store.Variants())
}

// stockLevel re-reads a balance row so assertions see committed state.
func (f *fixture) stockLevel(t *testing.T, id uuid.UUID) int {
	t.Helper()
	stock, err := f.store.Stocks().FindByID(id)
	if err != nil {
		t.Fatalf("read stock %s: %v", id, err)
	}
	return stock.Stock
}

func (f *fixture) movementsFor(t *testing.T, referenceID uuid.UUID) []model.StockMovement {
	t.Helper()
	moves, err := f.store.Movements().FindByReference(referenceID)
	if err != nil {
		t.Fatalf("read movements: %v", err)
	}
	return moves
}

func idPtr(id uuid.UUID) *uuid.UUID { return &id }
