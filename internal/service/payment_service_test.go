package service

import (
	"errors"
	"testing"

	"go-pos-backend/internal/model"
)

func TestCreatePaymentSnapshotsOrderTotal(t *testing.T) {
	f := newFixture(t)
	orders := f.orderService()
	payments := f.paymentService()

	order, err := orders.CreateOrder(&CreateOrderRequest{
		BranchID: idPtr(f.branchID),
		Items: []OrderItemRequest{
			{ProductID: idPtr(f.americano.ID), Quantity: 2, Price: 15000},
		},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	payment, err := payments.CreatePayment(&CreatePaymentRequest{
		OrderID: order.ID,
		Method:  model.PaymentCash,
	})
	if err != nil {
		t.Fatalf("CreatePayment: %v", err)
	}
	if payment.Status != model.PaymentSuccess {
		t.Errorf("status = %s, want success", payment.Status)
	}
	if payment.PaidAt == nil {
		t.Error("paid_at not set on creation")
	}
	if payment.Amount != order.TotalAmount() {
		t.Errorf("amount = %d, want order total %d", payment.Amount, order.TotalAmount())
	}
	// Stock is untouched until verification.
	if got := f.stockLevel(t, f.americanoStock.ID); got != 10 {
		t.Errorf("stock after create = %d, want 10", got)
	}
}

func TestCreatePaymentRequiresPendingOrder(t *testing.T) {
	f := newFixture(t)
	orders := f.orderService()
	payments := f.paymentService()

	if _, err := payments.CreatePayment(&CreatePaymentRequest{OrderID: f.branchID, Method: model.PaymentCash}); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("unknown order: err = %v, want ErrOrderNotFound", err)
	}

	order, err := orders.CreateOrder(&CreateOrderRequest{
		BranchID: idPtr(f.branchID),
		Items:    []OrderItemRequest{{ProductID: idPtr(f.americano.ID), Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if _, err := orders.CancelOrder(order.ID); err != nil {
		t.Fatalf("CancelOrder: %v", err)
	}
	if _, err := payments.CreatePayment(&CreatePaymentRequest{OrderID: order.ID, Method: model.PaymentCash}); !errors.Is(err, ErrOrderNotPending) {
		t.Errorf("cancelled order: err = %v, want ErrOrderNotPending", err)
	}
}

func TestCreatePaymentValidatesMethod(t *testing.T) {
	f := newFixture(t)
	orders := f.orderService()
	payments := f.paymentService()

	order, err := orders.CreateOrder(&CreateOrderRequest{
		BranchID: idPtr(f.branchID),
		Items:    []OrderItemRequest{{ProductID: idPtr(f.americano.ID), Quantity: 1, Price: 15000}},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	_, err = payments.CreatePayment(&CreatePaymentRequest{OrderID: order.ID, Method: "bitcoin"})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("unknown method: err = %v, want ErrValidation", err)
	}
	_, err = payments.CreatePayment(&CreatePaymentRequest{Method: model.PaymentCash})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("missing order id: err = %v, want ErrValidation", err)
	}

	if all, err := f.store.Payments().FindAll(nil); err != nil || len(all) != 0 {
		t.Errorf("rejected requests must not persist payments, got %d (err %v)", len(all), err)
	}
}

func TestVerifyPaymentSettlesVariantLine(t *testing.T) {
	f := newFixture(t)
	orders := f.orderService()
	payments := f.paymentService()

	order, err := orders.CreateOrder(&CreateOrderRequest{
		BranchID: idPtr(f.branchID),
		Items:    []OrderItemRequest{{VariantID: idPtr(f.teeS.ID), Quantity: 2, Price: 50000}},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	payment, err := payments.CreatePayment(&CreatePaymentRequest{OrderID: order.ID, Method: model.PaymentCash})
	if err != nil {
		t.Fatalf("CreatePayment: %v", err)
	}

	verified, err := payments.VerifyPayment(payment.ID)
	if err != nil {
		t.Fatalf("VerifyPayment: %v", err)
	}
	if verified.Status != model.PaymentSuccess {
		t.Errorf("payment status = %s, want success", verified.Status)
	}

	if got := f.stockLevel(t, f.teeSStock.ID); got != 1 {
		t.Errorf("variant stock after settle = %d, want 1", got)
	}
	settled, err := f.store.Orders().FindByID(order.ID)
	if err != nil {
		t.Fatalf("reload order: %v", err)
	}
	if settled.Status != model.OrderCompleted {
		t.Errorf("order status = %s, want completed", settled.Status)
	}

	moves := f.movementsFor(t, order.ID)
	if len(moves) != 1 {
		t.Fatalf("expected 1 sale movement, got %d", len(moves))
	}
	m := moves[0]
	if m.ReferenceType != model.RefTypeSale {
		t.Errorf("reference type = %s, want sale", m.ReferenceType)
	}
	if m.Qty != 2 {
		t.Errorf("movement qty = %d, want 2", m.Qty)
	}
	if m.BranchID != f.branchID {
		t.Errorf("movement branch = %s, want %s", m.BranchID, f.branchID)
	}
	if m.VariantID == nil || *m.VariantID != f.teeS.ID {
		t.Error("movement should reference the settled variant")
	}
}

func TestVerifyPaymentWalksVariantRowsForProductLine(t *testing.T) {
	f := newFixture(t)
	orders := f.orderService()
	payments := f.paymentService()

	// The draft is created while a product-level row exists; the row is
	// gone by settlement time, so qty 6 drains S (3) and takes 3 from M.
	teeProductStock := f.seedStock(t, &f.tee.ID, nil, 10)
	order, err := orders.CreateOrder(&CreateOrderRequest{
		BranchID: idPtr(f.branchID),
		Items:    []OrderItemRequest{{ProductID: idPtr(f.tee.ID), Quantity: 6, Price: 45000}},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	payment, err := payments.CreatePayment(&CreatePaymentRequest{OrderID: order.ID, Method: model.PaymentCash})
	if err != nil {
		t.Fatalf("CreatePayment: %v", err)
	}
	if err := f.store.Stocks().Delete(teeProductStock); err != nil {
		t.Fatalf("drop product row: %v", err)
	}
	if _, err := payments.VerifyPayment(payment.ID); err != nil {
		t.Fatalf("VerifyPayment: %v", err)
	}

	if got := f.stockLevel(t, f.teeSStock.ID); got != 0 {
		t.Errorf("first variant row = %d, want 0", got)
	}
	if got := f.stockLevel(t, f.teeMStock.ID); got != 2 {
		t.Errorf("second variant row = %d, want 2", got)
	}

	moves := f.movementsFor(t, order.ID)
	if len(moves) != 2 {
		t.Fatalf("expected one movement per touched row, got %d", len(moves))
	}
	if moves[0].Qty != 3 || moves[1].Qty != 3 {
		t.Errorf("movement quantities = %d, %d, want 3 and 3", moves[0].Qty, moves[1].Qty)
	}
}

func TestVerifyPaymentRollsBackOnInsufficiency(t *testing.T) {
	f := newFixture(t)
	orders := f.orderService()
	payments := f.paymentService()

	order, err := orders.CreateOrder(&CreateOrderRequest{
		BranchID: idPtr(f.branchID),
		Items: []OrderItemRequest{
			{VariantID: idPtr(f.teeS.ID), Quantity: 2, Price: 50000},
			{ProductID: idPtr(f.americano.ID), Quantity: 5, Price: 15000},
		},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	payment, err := payments.CreatePayment(&CreatePaymentRequest{OrderID: order.ID, Method: model.PaymentCash})
	if err != nil {
		t.Fatalf("CreatePayment: %v", err)
	}

	// Stock moved between draft and settlement: the second line can no
	// longer be covered, so the first line's deduction must be undone too.
	f.americanoStock.Stock = 2
	if err := f.store.Stocks().Save(f.americanoStock); err != nil {
		t.Fatalf("shrink stock: %v", err)
	}

	if _, err := payments.VerifyPayment(payment.ID); !errors.Is(err, ErrProductStockInsufficient) {
		t.Fatalf("err = %v, want ErrProductStockInsufficient", err)
	}

	if got := f.stockLevel(t, f.teeSStock.ID); got != 3 {
		t.Errorf("variant stock after rollback = %d, want restored 3", got)
	}
	if got := f.stockLevel(t, f.americanoStock.ID); got != 2 {
		t.Errorf("product stock after rollback = %d, want 2", got)
	}
	reloaded, err := f.store.Orders().FindByID(order.ID)
	if err != nil {
		t.Fatalf("reload order: %v", err)
	}
	if reloaded.Status != model.OrderPending {
		t.Errorf("order status = %s, want still pending", reloaded.Status)
	}
	if moves := f.movementsFor(t, order.ID); len(moves) != 0 {
		t.Errorf("expected no movements after rollback, got %d", len(moves))
	}
}

func TestVerifyPaymentWithoutBranchSkipsLedger(t *testing.T) {
	f := newFixture(t)
	orders := f.orderService()
	payments := f.paymentService()

	order, err := orders.CreateOrder(&CreateOrderRequest{
		Items: []OrderItemRequest{{VariantID: idPtr(f.teeM.ID), Quantity: 1, Price: 60000}},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	payment, err := payments.CreatePayment(&CreatePaymentRequest{OrderID: order.ID, Method: model.PaymentCash})
	if err != nil {
		t.Fatalf("CreatePayment: %v", err)
	}
	if _, err := payments.VerifyPayment(payment.ID); err != nil {
		t.Fatalf("VerifyPayment: %v", err)
	}

	if got := f.stockLevel(t, f.teeMStock.ID); got != 4 {
		t.Errorf("stock after settle = %d, want 4", got)
	}
	if moves := f.movementsFor(t, order.ID); len(moves) != 0 {
		t.Errorf("branchless order should settle balances only, got %d movements", len(moves))
	}
}

func TestVerifyPaymentTwiceRejected(t *testing.T) {
	f := newFixture(t)
	orders := f.orderService()
	payments := f.paymentService()

	order, err := orders.CreateOrder(&CreateOrderRequest{
		BranchID: idPtr(f.branchID),
		Items:    []OrderItemRequest{{ProductID: idPtr(f.americano.ID), Quantity: 1, Price: 15000}},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	payment, err := payments.CreatePayment(&CreatePaymentRequest{OrderID: order.ID, Method: model.PaymentCash})
	if err != nil {
		t.Fatalf("CreatePayment: %v", err)
	}
	if _, err := payments.VerifyPayment(payment.ID); err != nil {
		t.Fatalf("first VerifyPayment: %v", err)
	}

	if _, err := payments.VerifyPayment(payment.ID); !errors.Is(err, ErrOrderNotPending) {
		t.Errorf("second verify: err = %v, want ErrOrderNotPending", err)
	}
	if got := f.stockLevel(t, f.americanoStock.ID); got != 9 {
		t.Errorf("stock after double verify = %d, want deducted once to 9", got)
	}
}
