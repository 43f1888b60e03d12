package service

import (
	"errors"
	"strings"
	"testing"

	"go-pos-backend/internal/model"
)

func TestCreateOrderAggregatesDuplicateLines(t *testing.T) {
	f := newFixture(t)
	svc := f.orderService()

	order, err := svc.CreateOrder(&CreateOrderRequest{
		BranchID: idPtr(f.branchID),
		Items: []OrderItemRequest{
			{ProductID: idPtr(f.americano.ID), Quantity: 2},
			{ProductID: idPtr(f.americano.ID), Quantity: 3, Price: 14000},
		},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if len(order.Items) != 1 {
		t.Fatalf("expected duplicate lines to collapse into 1 item, got %d", len(order.Items))
	}
	item := order.Items[0]
	if item.Quantity != 5 {
		t.Errorf("quantity = %d, want 5", item.Quantity)
	}
	if item.Price != 14000 {
		t.Errorf("price = %d, want last duplicate's 14000", item.Price)
	}
	if item.Subtotal != 70000 {
		t.Errorf("item subtotal = %d, want 70000", item.Subtotal)
	}
	if order.Subtotal != 70000 {
		t.Errorf("order subtotal = %d, want 70000", order.Subtotal)
	}
	if order.Status != model.OrderPending {
		t.Errorf("status = %s, want pending", order.Status)
	}
	if !strings.HasPrefix(order.InvoiceNumber, "INV-") {
		t.Errorf("invoice number %q missing INV- prefix", order.InvoiceNumber)
	}
}

func TestCreateOrderSnapshotsRequestPrice(t *testing.T) {
	f := newFixture(t)
	svc := f.orderService()

	// The line price is whatever the request said, never re-read from the
	// catalog. A zero price stays zero.
	order, err := svc.CreateOrder(&CreateOrderRequest{
		BranchID: idPtr(f.branchID),
		Items: []OrderItemRequest{
			{VariantID: idPtr(f.teeS.ID), Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if order.Items[0].Price != 0 {
		t.Errorf("price = %d, want the request's 0", order.Items[0].Price)
	}
	if order.Subtotal != 0 {
		t.Errorf("order subtotal = %d, want 0", order.Subtotal)
	}
	if order.Items[0].ProductID == nil || *order.Items[0].ProductID != f.tee.ID {
		t.Errorf("variant line should carry parent product %s", f.tee.ID)
	}

	priced, err := svc.CreateOrder(&CreateOrderRequest{
		BranchID: idPtr(f.branchID),
		Items: []OrderItemRequest{
			{VariantID: idPtr(f.teeS.ID), Quantity: 1, Price: 48000},
		},
	})
	if err != nil {
		t.Fatalf("CreateOrder with explicit price: %v", err)
	}
	if priced.Items[0].Price != 48000 {
		t.Errorf("price = %d, want the request's 48000", priced.Items[0].Price)
	}
}

func TestCreateOrderMergesIntoPendingDraft(t *testing.T) {
	f := newFixture(t)
	svc := f.orderService()

	first, err := svc.CreateOrder(&CreateOrderRequest{
		BranchID: idPtr(f.branchID),
		Items: []OrderItemRequest{
			{ProductID: idPtr(f.americano.ID), Quantity: 2, Price: 15000},
		},
	})
	if err != nil {
		t.Fatalf("first CreateOrder: %v", err)
	}

	merged, err := svc.CreateOrder(&CreateOrderRequest{
		OrderID:  idPtr(first.ID),
		BranchID: idPtr(f.branchID),
		Items: []OrderItemRequest{
			{ProductID: idPtr(f.americano.ID), Quantity: 1, Price: 12000},
			{VariantID: idPtr(f.teeM.ID), Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("merge CreateOrder: %v", err)
	}

	if merged.ID != first.ID {
		t.Fatalf("expected merge into %s, got new order %s", first.ID, merged.ID)
	}
	if len(merged.Items) != 2 {
		t.Fatalf("expected 2 items after merge, got %d", len(merged.Items))
	}
	var americanoLine, teeLine *model.OrderItem
	for i := range merged.Items {
		switch {
		case merged.Items[i].VariantID == nil:
			americanoLine = &merged.Items[i]
		default:
			teeLine = &merged.Items[i]
		}
	}
	if americanoLine == nil || teeLine == nil {
		t.Fatal("missing expected lines after merge")
	}
	if americanoLine.Quantity != 3 {
		t.Errorf("merged quantity = %d, want 3", americanoLine.Quantity)
	}
	if americanoLine.Price != 12000 {
		t.Errorf("merged price = %d, want incoming 12000", americanoLine.Price)
	}
	want := americanoLine.Subtotal + teeLine.Subtotal
	if merged.Subtotal != want {
		t.Errorf("order subtotal = %d, want %d", merged.Subtotal, want)
	}
}

func TestCreateOrderMergeCarriesNotes(t *testing.T) {
	f := newFixture(t)
	svc := f.orderService()

	first, err := svc.CreateOrder(&CreateOrderRequest{
		BranchID: idPtr(f.branchID),
		Notes:    "first note",
		Items:    []OrderItemRequest{{ProductID: idPtr(f.americano.ID), Quantity: 1, Price: 15000}},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	merged, err := svc.CreateOrder(&CreateOrderRequest{
		OrderID:  idPtr(first.ID),
		BranchID: idPtr(f.branchID),
		Notes:    "updated note",
		Items:    []OrderItemRequest{{ProductID: idPtr(f.americano.ID), Quantity: 1, Price: 15000}},
	})
	if err != nil {
		t.Fatalf("merge CreateOrder: %v", err)
	}
	if merged.Notes != "updated note" {
		t.Errorf("notes = %q, want %q", merged.Notes, "updated note")
	}

	// An absent notes field leaves the existing notes alone.
	kept, err := svc.CreateOrder(&CreateOrderRequest{
		OrderID:  idPtr(first.ID),
		BranchID: idPtr(f.branchID),
		Items:    []OrderItemRequest{{ProductID: idPtr(f.americano.ID), Quantity: 1, Price: 15000}},
	})
	if err != nil {
		t.Fatalf("merge without notes: %v", err)
	}
	if kept.Notes != "updated note" {
		t.Errorf("notes = %q, want unchanged %q", kept.Notes, "updated note")
	}
}

func TestCreateOrderClosedDraftStartsFresh(t *testing.T) {
	f := newFixture(t)
	svc := f.orderService()

	first, err := svc.CreateOrder(&CreateOrderRequest{
		BranchID: idPtr(f.branchID),
		Items:    []OrderItemRequest{{ProductID: idPtr(f.americano.ID), Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if _, err := svc.CancelOrder(first.ID); err != nil {
		t.Fatalf("CancelOrder: %v", err)
	}

	second, err := svc.CreateOrder(&CreateOrderRequest{
		OrderID:  idPtr(first.ID),
		BranchID: idPtr(f.branchID),
		Items:    []OrderItemRequest{{ProductID: idPtr(f.americano.ID), Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("CreateOrder on cancelled draft: %v", err)
	}
	if second.ID == first.ID {
		t.Error("cancelled draft should not be merged into, expected a fresh order")
	}
	if second.Status != model.OrderPending {
		t.Errorf("status = %s, want pending", second.Status)
	}
}

func TestCreateOrderRejectsEmptyAndAmbiguousLines(t *testing.T) {
	f := newFixture(t)
	svc := f.orderService()

	if _, err := svc.CreateOrder(&CreateOrderRequest{BranchID: idPtr(f.branchID)}); !errors.Is(err, ErrOrderEmpty) {
		t.Errorf("empty items: err = %v, want ErrOrderEmpty", err)
	}

	_, err := svc.CreateOrder(&CreateOrderRequest{
		BranchID: idPtr(f.branchID),
		Items: []OrderItemRequest{
			{ProductID: idPtr(f.tee.ID), VariantID: idPtr(f.teeS.ID), Quantity: 1},
		},
	})
	if !errors.Is(err, ErrItemRefRequired) {
		t.Errorf("ambiguous ref: err = %v, want ErrItemRefRequired", err)
	}

	_, err = svc.CreateOrder(&CreateOrderRequest{
		BranchID: idPtr(f.branchID),
		Items:    []OrderItemRequest{{ProductID: idPtr(f.americano.ID), Quantity: 0}},
	})
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("zero quantity: err = %v, want ErrInvalidQuantity", err)
	}
}

func TestCreateOrderChecksAvailability(t *testing.T) {
	f := newFixture(t)
	svc := f.orderService()

	_, err := svc.CreateOrder(&CreateOrderRequest{
		BranchID: idPtr(f.branchID),
		Items:    []OrderItemRequest{{ProductID: idPtr(f.americano.ID), Quantity: 11}},
	})
	if !errors.Is(err, ErrProductStockInsufficient) {
		t.Errorf("product over stock: err = %v, want ErrProductStockInsufficient", err)
	}

	_, err = svc.CreateOrder(&CreateOrderRequest{
		BranchID: idPtr(f.branchID),
		Items:    []OrderItemRequest{{VariantID: idPtr(f.teeS.ID), Quantity: 4}},
	})
	if !errors.Is(err, ErrVariantStockInsufficient) {
		t.Errorf("variant over stock: err = %v, want ErrVariantStockInsufficient", err)
	}
}

func TestCreateOrderRequiresProductBalanceRow(t *testing.T) {
	f := newFixture(t)
	svc := f.orderService()

	// Tee has no product-level balance row, only variant rows. A product
	// line cannot be drafted against variant balances; that walk exists
	// only at settlement.
	_, err := svc.CreateOrder(&CreateOrderRequest{
		BranchID: idPtr(f.branchID),
		Items:    []OrderItemRequest{{ProductID: idPtr(f.tee.ID), Quantity: 1, Price: 45000}},
	})
	if !errors.Is(err, ErrProductStockNotFound) {
		t.Errorf("no product row: err = %v, want ErrProductStockNotFound", err)
	}
}

func TestUpdateItemQuantityRecomputesSubtotal(t *testing.T) {
	f := newFixture(t)
	svc := f.orderService()

	order, err := svc.CreateOrder(&CreateOrderRequest{
		BranchID: idPtr(f.branchID),
		Items:    []OrderItemRequest{{ProductID: idPtr(f.americano.ID), Quantity: 2, Price: 15000}},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	updated, err := svc.UpdateItemQuantity(order.ID, order.Items[0].ID, 5)
	if err != nil {
		t.Fatalf("UpdateItemQuantity: %v", err)
	}
	if updated.Items[0].Quantity != 5 {
		t.Errorf("quantity = %d, want 5", updated.Items[0].Quantity)
	}
	if updated.Items[0].Subtotal != 75000 {
		t.Errorf("item subtotal = %d, want 75000", updated.Items[0].Subtotal)
	}
	if updated.Subtotal != 75000 {
		t.Errorf("order subtotal = %d, want 75000", updated.Subtotal)
	}

	if _, err := svc.UpdateItemQuantity(order.ID, order.Items[0].ID, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("zero quantity: err = %v, want ErrInvalidQuantity", err)
	}

	// A draft never holds stock, so the quantity may exceed the current
	// balance (10). Settlement is where insufficiency is rejected.
	over, err := svc.UpdateItemQuantity(order.ID, order.Items[0].ID, 11)
	if err != nil {
		t.Fatalf("UpdateItemQuantity past balance: %v", err)
	}
	if over.Items[0].Quantity != 11 {
		t.Errorf("quantity = %d, want 11", over.Items[0].Quantity)
	}
}

func TestRemoveItemRecomputesSubtotal(t *testing.T) {
	f := newFixture(t)
	svc := f.orderService()

	order, err := svc.CreateOrder(&CreateOrderRequest{
		BranchID: idPtr(f.branchID),
		Items: []OrderItemRequest{
			{ProductID: idPtr(f.americano.ID), Quantity: 1, Price: 15000},
			{VariantID: idPtr(f.teeS.ID), Quantity: 1, Price: 50000},
		},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	var teeItemID = order.Items[1].ID
	updated, err := svc.RemoveItem(order.ID, teeItemID)
	if err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	if len(updated.Items) != 1 {
		t.Fatalf("expected 1 item left, got %d", len(updated.Items))
	}
	if updated.Subtotal != 15000 {
		t.Errorf("order subtotal = %d, want 15000", updated.Subtotal)
	}

	if _, err := svc.RemoveItem(order.ID, teeItemID); !errors.Is(err, ErrOrderItemNotFound) {
		t.Errorf("remove again: err = %v, want ErrOrderItemNotFound", err)
	}
}

func TestAssignCustomer(t *testing.T) {
	f := newFixture(t)
	svc := f.orderService()

	order, err := svc.CreateOrder(&CreateOrderRequest{
		BranchID: idPtr(f.branchID),
		Items:    []OrderItemRequest{{ProductID: idPtr(f.americano.ID), Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	updated, err := svc.AssignCustomer(order.ID, f.customer.ID)
	if err != nil {
		t.Fatalf("AssignCustomer: %v", err)
	}
	if updated.CustomerID == nil || *updated.CustomerID != f.customer.ID {
		t.Error("customer not attached to order")
	}

	if _, err := svc.AssignCustomer(order.ID, f.branchID); !errors.Is(err, ErrCustomerNotFound) {
		t.Errorf("unknown customer: err = %v, want ErrCustomerNotFound", err)
	}
}

func TestCancelOrderIsTerminal(t *testing.T) {
	f := newFixture(t)
	svc := f.orderService()

	order, err := svc.CreateOrder(&CreateOrderRequest{
		BranchID: idPtr(f.branchID),
		Items:    []OrderItemRequest{{ProductID: idPtr(f.americano.ID), Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	cancelled, err := svc.CancelOrder(order.ID)
	if err != nil {
		t.Fatalf("CancelOrder: %v", err)
	}
	if cancelled.Status != model.OrderCancelled {
		t.Errorf("status = %s, want cancelled", cancelled.Status)
	}
	// Drafts never held stock, so nothing should be restocked.
	if got := f.stockLevel(t, f.americanoStock.ID); got != 10 {
		t.Errorf("stock after cancel = %d, want untouched 10", got)
	}

	if _, err := svc.CancelOrder(order.ID); !errors.Is(err, ErrOrderNotPending) {
		t.Errorf("cancel twice: err = %v, want ErrOrderNotPending", err)
	}
	if _, err := svc.UpdateItemQuantity(order.ID, order.Items[0].ID, 2); !errors.Is(err, ErrOrderNotEditable) {
		t.Errorf("edit cancelled: err = %v, want ErrOrderNotEditable", err)
	}
}
