package service

import (
	"errors"
	"testing"
	"time"

	"go-pos-backend/internal/model"

	"github.com/google/uuid"
)

func TestCreateStockRecordsOpeningBalance(t *testing.T) {
	f := newFixture(t)
	svc := f.stockService()
	branchID := uuid.New()

	stock, err := svc.CreateStock(&CreateStockRequest{
		ProductID: idPtr(f.americano.ID),
		BranchID:  branchID,
		Stock:     7,
		MinStock:  2,
	})
	if err != nil {
		t.Fatalf("CreateStock: %v", err)
	}
	if stock.Stock != 7 || stock.MinStock != 2 {
		t.Errorf("stock = %d/%d, want 7/2", stock.Stock, stock.MinStock)
	}

	moves := f.movementsFor(t, stock.ID)
	if len(moves) != 1 {
		t.Fatalf("expected 1 opening movement, got %d", len(moves))
	}
	if moves[0].ReferenceType != model.RefTypeAdjust {
		t.Errorf("reference type = %s, want adjust", moves[0].ReferenceType)
	}
	if moves[0].Qty != 7 {
		t.Errorf("movement qty = %d, want 7", moves[0].Qty)
	}
}

func TestCreateStockZeroOpeningSkipsLedger(t *testing.T) {
	f := newFixture(t)
	svc := f.stockService()

	stock, err := svc.CreateStock(&CreateStockRequest{
		VariantID: idPtr(f.teeS.ID),
		BranchID:  uuid.New(),
	})
	if err != nil {
		t.Fatalf("CreateStock: %v", err)
	}
	if moves := f.movementsFor(t, stock.ID); len(moves) != 0 {
		t.Errorf("zero opening balance should not write the ledger, got %d movements", len(moves))
	}
}

func TestCreateStockRefusesDuplicateRow(t *testing.T) {
	f := newFixture(t)
	svc := f.stockService()

	// The fixture already holds a row for americano at this branch.
	_, err := svc.CreateStock(&CreateStockRequest{
		ProductID: idPtr(f.americano.ID),
		BranchID:  f.branchID,
		Stock:     1,
	})
	if !errors.Is(err, ErrStockRowExists) {
		t.Errorf("err = %v, want ErrStockRowExists", err)
	}

	// Same ref at another branch is a distinct row.
	if _, err := svc.CreateStock(&CreateStockRequest{
		ProductID: idPtr(f.americano.ID),
		BranchID:  uuid.New(),
		Stock:     1,
	}); err != nil {
		t.Errorf("other branch: %v", err)
	}
}

func TestCreateStockValidatesRef(t *testing.T) {
	f := newFixture(t)
	svc := f.stockService()

	if _, err := svc.CreateStock(&CreateStockRequest{BranchID: f.branchID}); !errors.Is(err, ErrItemRefRequired) {
		t.Errorf("no ref: err = %v, want ErrItemRefRequired", err)
	}
	if _, err := svc.CreateStock(&CreateStockRequest{ProductID: idPtr(f.americano.ID)}); !errors.Is(err, ErrValidation) {
		t.Errorf("zero branch: err = %v, want ErrValidation", err)
	}
	if _, err := svc.CreateStock(&CreateStockRequest{ProductID: idPtr(f.americano.ID), BranchID: f.branchID, Stock: -1}); !errors.Is(err, ErrValidation) {
		t.Errorf("negative stock: err = %v, want ErrValidation", err)
	}
	if _, err := svc.CreateStock(&CreateStockRequest{ProductID: idPtr(uuid.New()), BranchID: f.branchID}); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("unknown product: err = %v, want ErrProductNotFound", err)
	}
	if _, err := svc.CreateStock(&CreateStockRequest{VariantID: idPtr(uuid.New()), BranchID: f.branchID}); !errors.Is(err, ErrVariantNotFound) {
		t.Errorf("unknown variant: err = %v, want ErrVariantNotFound", err)
	}
}

func TestUpdateStockWritesSignedDelta(t *testing.T) {
	f := newFixture(t)
	svc := f.stockService()

	updated, err := svc.UpdateStock(f.americanoStock.ID, &UpdateStockRequest{Stock: 4, MinStock: 3})
	if err != nil {
		t.Fatalf("UpdateStock: %v", err)
	}
	if updated.Stock != 4 || updated.MinStock != 3 {
		t.Errorf("stock = %d/%d, want 4/3", updated.Stock, updated.MinStock)
	}

	moves := f.movementsFor(t, f.americanoStock.ID)
	if len(moves) != 1 {
		t.Fatalf("expected 1 adjust movement, got %d", len(moves))
	}
	if moves[0].Qty != -6 {
		t.Errorf("movement qty = %d, want -6 for a 10 to 4 correction", moves[0].Qty)
	}
	if moves[0].ReferenceType != model.RefTypeAdjust {
		t.Errorf("reference type = %s, want adjust", moves[0].ReferenceType)
	}

	// Threshold-only edits leave the ledger alone.
	if _, err := svc.UpdateStock(f.americanoStock.ID, &UpdateStockRequest{Stock: 4, MinStock: 1}); err != nil {
		t.Fatalf("UpdateStock threshold only: %v", err)
	}
	if moves := f.movementsFor(t, f.americanoStock.ID); len(moves) != 1 {
		t.Errorf("expected still 1 movement after threshold edit, got %d", len(moves))
	}
}

func TestCreateMovementAppliesDelta(t *testing.T) {
	f := newFixture(t)
	svc := f.stockService()

	movement, err := svc.CreateMovement(&CreateMovementRequest{
		ProductID: idPtr(f.americano.ID),
		BranchID:  f.branchID,
		Qty:       -4,
	})
	if err != nil {
		t.Fatalf("CreateMovement: %v", err)
	}
	if movement.ReferenceType != model.RefTypeAdjust {
		t.Errorf("reference type = %s, want adjust", movement.ReferenceType)
	}
	if got := f.stockLevel(t, f.americanoStock.ID); got != 6 {
		t.Errorf("stock after delta = %d, want 6", got)
	}

	if _, err := svc.CreateMovement(&CreateMovementRequest{ProductID: idPtr(f.americano.ID), BranchID: f.branchID, Qty: -7}); !errors.Is(err, ErrProductStockInsufficient) {
		t.Errorf("negative balance: err = %v, want ErrProductStockInsufficient", err)
	}
	if _, err := svc.CreateMovement(&CreateMovementRequest{ProductID: idPtr(f.americano.ID), BranchID: f.branchID}); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("zero delta: err = %v, want ErrInvalidQuantity", err)
	}
	if _, err := svc.CreateMovement(&CreateMovementRequest{VariantID: idPtr(f.teeS.ID), BranchID: uuid.New(), Qty: 1}); !errors.Is(err, ErrVariantStockNotFound) {
		t.Errorf("missing row: err = %v, want ErrVariantStockNotFound", err)
	}
}

func TestCreateBatchIncrementsExistingRow(t *testing.T) {
	f := newFixture(t)
	svc := f.stockService()

	batch, err := svc.CreateBatch(&CreateBatchRequest{
		VariantID: f.teeS.ID,
		BranchID:  f.branchID,
		BatchCode: "B-001",
		ExpDate:   time.Now().AddDate(0, 6, 0),
		Qty:       5,
	})
	if err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	if got := f.stockLevel(t, f.teeSStock.ID); got != 8 {
		t.Errorf("stock after intake = %d, want 8", got)
	}
	moves := f.movementsFor(t, batch.ID)
	if len(moves) != 1 {
		t.Fatalf("expected 1 purchase movement, got %d", len(moves))
	}
	if moves[0].ReferenceType != model.RefTypePurchase {
		t.Errorf("reference type = %s, want purchase", moves[0].ReferenceType)
	}
	if moves[0].Qty != 5 {
		t.Errorf("movement qty = %d, want 5", moves[0].Qty)
	}
}

func TestCreateBatchOpensMissingRow(t *testing.T) {
	f := newFixture(t)
	svc := f.stockService()
	branchID := uuid.New()

	// No balance row for this variant at the new branch yet.
	if _, err := svc.CreateBatch(&CreateBatchRequest{
		VariantID: f.teeM.ID,
		BranchID:  branchID,
		BatchCode: "B-002",
		Qty:       12,
	}); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	stock, err := f.store.Stocks().FindByRef(model.VariantRef(f.teeM.ID), &branchID)
	if err != nil {
		t.Fatalf("expected a balance row to be opened: %v", err)
	}
	if stock.Stock != 12 {
		t.Errorf("opened row stock = %d, want 12", stock.Stock)
	}
	if stock.ProductID == nil || *stock.ProductID != f.tee.ID {
		t.Error("opened row should carry the parent product")
	}
}

func TestCreateBatchValidates(t *testing.T) {
	f := newFixture(t)
	svc := f.stockService()

	if _, err := svc.CreateBatch(&CreateBatchRequest{VariantID: uuid.New(), BranchID: f.branchID, BatchCode: "B", Qty: 1}); !errors.Is(err, ErrVariantNotFound) {
		t.Errorf("unknown variant: err = %v, want ErrVariantNotFound", err)
	}
	if _, err := svc.CreateBatch(&CreateBatchRequest{VariantID: f.teeS.ID, BranchID: f.branchID, BatchCode: "B"}); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("zero qty: err = %v, want ErrInvalidQuantity", err)
	}
	if _, err := svc.CreateBatch(&CreateBatchRequest{VariantID: f.teeS.ID, BatchCode: "B", Qty: 1}); !errors.Is(err, ErrValidation) {
		t.Errorf("zero branch: err = %v, want ErrValidation", err)
	}
	if _, err := svc.CreateBatch(&CreateBatchRequest{VariantID: f.teeS.ID, BranchID: f.branchID, Qty: 1}); !errors.Is(err, ErrValidation) {
		t.Errorf("missing batch code: err = %v, want ErrValidation", err)
	}
}

func TestUpdateBatchIsDescriptiveOnly(t *testing.T) {
	f := newFixture(t)
	svc := f.stockService()

	batch, err := svc.CreateBatch(&CreateBatchRequest{
		VariantID: f.teeS.ID,
		BranchID:  f.branchID,
		BatchCode: "B-003",
		Qty:       4,
	})
	if err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}
	levelBefore := f.stockLevel(t, f.teeSStock.ID)

	newExp := time.Now().AddDate(1, 0, 0)
	updated, err := svc.UpdateBatch(batch.ID, &UpdateBatchRequest{BatchCode: "B-003R", ExpDate: newExp})
	if err != nil {
		t.Fatalf("UpdateBatch: %v", err)
	}
	if updated.BatchCode != "B-003R" {
		t.Errorf("batch code = %s, want B-003R", updated.BatchCode)
	}
	if updated.Qty != 4 {
		t.Errorf("qty = %d, want unchanged 4", updated.Qty)
	}
	if got := f.stockLevel(t, f.teeSStock.ID); got != levelBefore {
		t.Errorf("stock after descriptive edit = %d, want unchanged %d", got, levelBefore)
	}
	if moves := f.movementsFor(t, batch.ID); len(moves) != 1 {
		t.Errorf("expected only the intake movement, got %d", len(moves))
	}
}
