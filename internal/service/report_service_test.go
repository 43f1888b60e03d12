package service

import (
	"context"
	"testing"
	"time"

	"go-pos-backend/internal/cache"
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"

	"github.com/google/uuid"
)

// stubReportRepo satisfies the aggregate queries with empty results; the
// breakdown under test is computed from the payment and order repositories.
type stubReportRepo struct{}

func (stubReportRepo) GetDailySales(startDate, endDate time.Time, branchID *uuid.UUID) ([]repository.DailySalesData, error) {
	return nil, nil
}

func (stubReportRepo) GetSalesSummary(startDate, endDate time.Time, branchID *uuid.UUID) (*repository.SalesSummary, error) {
	return &repository.SalesSummary{}, nil
}

func (stubReportRepo) GetTopItems(startDate, endDate time.Time, branchID *uuid.UUID, limit int) ([]repository.TopItemData, error) {
	return nil, nil
}

func TestSalesReportMethodBreakdown(t *testing.T) {
	f := newFixture(t)
	orders := f.orderService()
	payments := f.paymentService()
	reports := NewReportService(stubReportRepo{}, f.store.Payments(), f.store.Orders(), cache.NewNoopCache())

	pay := func(items []OrderItemRequest, branch *uuid.UUID, method model.PaymentMethod) {
		t.Helper()
		order, err := orders.CreateOrder(&CreateOrderRequest{BranchID: branch, Items: items})
		if err != nil {
			t.Fatalf("CreateOrder: %v", err)
		}
		if _, err := payments.CreatePayment(&CreatePaymentRequest{OrderID: order.ID, Method: method}); err != nil {
			t.Fatalf("CreatePayment: %v", err)
		}
	}

	pay([]OrderItemRequest{{ProductID: idPtr(f.americano.ID), Quantity: 1, Price: 15000}}, idPtr(f.branchID), model.PaymentCash)
	pay([]OrderItemRequest{{VariantID: idPtr(f.teeS.ID), Quantity: 1, Price: 50000}}, idPtr(f.branchID), model.PaymentCreditCard)
	pay([]OrderItemRequest{{VariantID: idPtr(f.teeM.ID), Quantity: 1, Price: 60000}}, nil, model.PaymentCash)

	start := time.Now().Add(-time.Hour)
	end := time.Now().Add(time.Hour)

	report, err := reports.GetSalesReport(context.Background(), start, end, nil)
	if err != nil {
		t.Fatalf("GetSalesReport: %v", err)
	}
	if len(report.Methods) != 2 {
		t.Fatalf("expected 2 methods, got %d", len(report.Methods))
	}
	totals := map[model.PaymentMethod]MethodTotal{}
	for _, m := range report.Methods {
		totals[m.Method] = m
	}
	if got := totals[model.PaymentCash]; got.Count != 2 || got.Amount != 75000 {
		t.Errorf("cash = %d payments / %d, want 2 / 75000", got.Count, got.Amount)
	}
	if got := totals[model.PaymentCreditCard]; got.Count != 1 || got.Amount != 50000 {
		t.Errorf("credit_card = %d payments / %d, want 1 / 50000", got.Count, got.Amount)
	}

	// Branch filter goes through the payments' orders; the branchless sale
	// drops out.
	filtered, err := reports.GetSalesReport(context.Background(), start, end, idPtr(f.branchID))
	if err != nil {
		t.Fatalf("GetSalesReport branch: %v", err)
	}
	got := map[model.PaymentMethod]MethodTotal{}
	for _, m := range filtered.Methods {
		got[m.Method] = m
	}
	if c := got[model.PaymentCash]; c.Count != 1 || c.Amount != 15000 {
		t.Errorf("branch cash = %d / %d, want 1 / 15000", c.Count, c.Amount)
	}
	if c := got[model.PaymentCreditCard]; c.Count != 1 || c.Amount != 50000 {
		t.Errorf("branch credit_card = %d / %d, want 1 / 50000", c.Count, c.Amount)
	}
}
