package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-pos-backend/internal/cache"
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"

	"github.com/google/uuid"
)

type ReportService interface {
	GetSalesReport(ctx context.Context, startDate, endDate time.Time, branchID *uuid.UUID) (*SalesReport, error)
	GetDailySummary(ctx context.Context, day time.Time, branchID *uuid.UUID) (*SalesReport, error)
}

// SalesReport bundles the period summary, the per-day series, the best
// sellers and the payment-method breakdown into one response.
type SalesReport struct {
	StartDate string                      `json:"start_date"`
	EndDate   string                      `json:"end_date"`
	Summary   repository.SalesSummary     `json:"summary"`
	Daily     []repository.DailySalesData `json:"daily"`
	TopItems  []repository.TopItemData    `json:"top_items"`
	Methods   []MethodTotal               `json:"payment_methods"`
}

// MethodTotal sums the period's settled payments per payment method.
type MethodTotal struct {
	Method model.PaymentMethod `json:"method"`
	Count  int                 `json:"count"`
	Amount int64               `json:"amount"`
}

const (
	reportCacheTTL   = 5 * time.Minute
	topItemsLimit    = 10
	reportDateLayout = "2006-01-02"
)

type reportService struct {
	reports  repository.ReportRepository
	payments repository.PaymentRepository
	orders   repository.OrderRepository
	cache    cache.Cache
}

func NewReportService(
	reports repository.ReportRepository,
	payments repository.PaymentRepository,
	orders repository.OrderRepository,
	c cache.Cache,
) ReportService {
	return &reportService{reports: reports, payments: payments, orders: orders, cache: c}
}

func (s *reportService) GetSalesReport(ctx context.Context, startDate, endDate time.Time, branchID *uuid.UUID) (*SalesReport, error) {
	key := reportCacheKey(startDate, endDate, branchID)
	if raw, ok := s.cache.Get(ctx, key); ok {
		var cached SalesReport
		if err := json.Unmarshal(raw, &cached); err == nil {
			return &cached, nil
		}
	}

	summary, err := s.reports.GetSalesSummary(startDate, endDate, branchID)
	if err != nil {
		return nil, err
	}
	daily, err := s.reports.GetDailySales(startDate, endDate, branchID)
	if err != nil {
		return nil, err
	}
	topItems, err := s.reports.GetTopItems(startDate, endDate, branchID, topItemsLimit)
	if err != nil {
		return nil, err
	}
	methods, err := s.methodBreakdown(startDate, endDate, branchID)
	if err != nil {
		return nil, err
	}

	report := &SalesReport{
		StartDate: startDate.Format(reportDateLayout),
		EndDate:   endDate.Format(reportDateLayout),
		Summary:   *summary,
		Daily:     daily,
		TopItems:  topItems,
		Methods:   methods,
	}

	if raw, err := json.Marshal(report); err == nil {
		s.cache.Set(ctx, key, raw, reportCacheTTL)
	}
	return report, nil
}

func (s *reportService) GetDailySummary(ctx context.Context, day time.Time, branchID *uuid.UUID) (*SalesReport, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)
	return s.GetSalesReport(ctx, start, end, branchID)
}

// methodBreakdown folds the period's settled payments by method. Payments
// carry no branch, so the branch filter goes through their orders.
func (s *reportService) methodBreakdown(startDate, endDate time.Time, branchID *uuid.UUID) ([]MethodTotal, error) {
	payments, err := s.payments.FindSuccessBetween(startDate, endDate)
	if err != nil {
		return nil, err
	}

	if branchID != nil && len(payments) > 0 {
		orderIDs := make([]uuid.UUID, 0, len(payments))
		for _, p := range payments {
			orderIDs = append(orderIDs, p.OrderID)
		}
		orders, err := s.orders.FindByIDs(orderIDs)
		if err != nil {
			return nil, err
		}
		inBranch := make(map[uuid.UUID]bool, len(orders))
		for _, o := range orders {
			if o.BranchID != nil && *o.BranchID == *branchID {
				inBranch[o.ID] = true
			}
		}
		kept := payments[:0]
		for _, p := range payments {
			if inBranch[p.OrderID] {
				kept = append(kept, p)
			}
		}
		payments = kept
	}

	byMethod := make(map[model.PaymentMethod]*MethodTotal)
	var order []model.PaymentMethod
	for _, p := range payments {
		total, ok := byMethod[p.Method]
		if !ok {
			total = &MethodTotal{Method: p.Method}
			byMethod[p.Method] = total
			order = append(order, p.Method)
		}
		total.Count++
		total.Amount += p.Amount
	}

	out := make([]MethodTotal, len(order))
	for i, m := range order {
		out[i] = *byMethod[m]
	}
	return out, nil
}

func reportCacheKey(startDate, endDate time.Time, branchID *uuid.UUID) string {
	branch := "all"
	if branchID != nil {
		branch = branchID.String()
	}
	return fmt.Sprintf("report:sales:%s:%s:%s",
		startDate.Format(reportDateLayout), endDate.Format(reportDateLayout), branch)
}
