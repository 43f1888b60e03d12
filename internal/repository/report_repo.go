package repository

import (
	"time"

	"go-pos-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportRepository interface {
	GetDailySales(startDate, endDate time.Time, branchID *uuid.UUID) ([]DailySalesData, error)
	GetSalesSummary(startDate, endDate time.Time, branchID *uuid.UUID) (*SalesSummary, error)
	GetTopItems(startDate, endDate time.Time, branchID *uuid.UUID, limit int) ([]TopItemData, error)
}

// DailySalesData is one chart point of the sales report.
type DailySalesData struct {
	Date       string `json:"date"`
	OrderCount int    `json:"order_count"`
	GrossSales int64  `json:"gross_sales"`
}

// SalesSummary aggregates the period as a whole.
type SalesSummary struct {
	TotalOrders   int64 `json:"total_orders"`
	TotalRevenue  int64 `json:"total_revenue"`
	TotalTax      int64 `json:"total_tax"`
	TotalDiscount int64 `json:"total_discount"`
}

// TopItemData ranks what sold most in the period.
type TopItemData struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Revenue   int64  `json:"revenue"`
}

type reportRepo struct {
	db *gorm.DB
}

func NewReportRepo(db *gorm.DB) ReportRepository {
	return &reportRepo{db}
}

// Only completed orders count as sales. Pending drafts and cancelled orders
// are excluded from every aggregate.
func (r *reportRepo) completedOrders(startDate, endDate time.Time, branchID *uuid.UUID) *gorm.DB {
	query := r.db.Model(&model.Order{}).
		Where("status = ? AND updated_at BETWEEN ? AND ?", model.OrderCompleted, startDate, endDate)
	if branchID != nil {
		query = query.Where("branch_id = ?", *branchID)
	}
	return query
}

func (r *reportRepo) GetDailySales(startDate, endDate time.Time, branchID *uuid.UUID) ([]DailySalesData, error) {
	var results []DailySalesData

	rows, err := r.completedOrders(startDate, endDate, branchID).
		Select(`
			DATE(updated_at) as date,
			COUNT(*) as order_count,
			COALESCE(SUM(subtotal + tax_amount - discount_amount), 0) as gross_sales
		`).
		Group("DATE(updated_at)").
		Order("date ASC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data DailySalesData
		if err := rows.Scan(&data.Date, &data.OrderCount, &data.GrossSales); err != nil {
			return nil, err
		}
		results = append(results, data)
	}

	return results, nil
}

func (r *reportRepo) GetSalesSummary(startDate, endDate time.Time, branchID *uuid.UUID) (*SalesSummary, error) {
	var summary SalesSummary

	if err := r.completedOrders(startDate, endDate, branchID).Count(&summary.TotalOrders).Error; err != nil {
		return nil, err
	}

	row := r.completedOrders(startDate, endDate, branchID).
		Select(`
			COALESCE(SUM(subtotal + tax_amount - discount_amount), 0),
			COALESCE(SUM(tax_amount), 0),
			COALESCE(SUM(discount_amount), 0)
		`).
		Row()
	if err := row.Scan(&summary.TotalRevenue, &summary.TotalTax, &summary.TotalDiscount); err != nil {
		return nil, err
	}

	return &summary, nil
}

func (r *reportRepo) GetTopItems(startDate, endDate time.Time, branchID *uuid.UUID, limit int) ([]TopItemData, error) {
	var results []TopItemData

	query := r.db.Model(&model.OrderItem{}).
		Select(`
			COALESCE(order_items.product_id::text, '') as product_id,
			COALESCE(order_items.variant_id::text, '') as variant_id,
			COALESCE(MAX(pv.name), MAX(p.name), '') as name,
			COALESCE(SUM(order_items.quantity), 0) as quantity,
			COALESCE(SUM(order_items.subtotal), 0) as revenue
		`).
		Joins("JOIN orders o ON o.id = order_items.order_id").
		Joins("LEFT JOIN products p ON p.id = order_items.product_id").
		Joins("LEFT JOIN product_variants pv ON pv.id = order_items.variant_id").
		Where("o.status = ? AND o.updated_at BETWEEN ? AND ?", model.OrderCompleted, startDate, endDate)
	if branchID != nil {
		query = query.Where("o.branch_id = ?", *branchID)
	}

	rows, err := query.
		Group("order_items.product_id, order_items.variant_id").
		Order("quantity DESC").
		Limit(limit).
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data TopItemData
		if err := rows.Scan(&data.ProductID, &data.VariantID, &data.Name, &data.Quantity, &data.Revenue); err != nil {
			return nil, err
		}
		results = append(results, data)
	}

	return results, nil
}
