package repository

import (
	"go-pos-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductStockRepository interface {
	Create(stock *model.ProductStock) error
	Save(stock *model.ProductStock) error
	FindByID(id uuid.UUID) (*model.ProductStock, error)
	FindAll(branchID *uuid.UUID) ([]model.ProductStock, error)
	Delete(stock *model.ProductStock) error
	FindByRef(ref model.ItemRef, branchID *uuid.UUID) (*model.ProductStock, error)
	FindByRefForUpdate(ref model.ItemRef, branchID *uuid.UUID) (*model.ProductStock, error)
	FindVariantStocksByProductForUpdate(productID uuid.UUID, branchID *uuid.UUID) ([]model.ProductStock, error)
}

type productStockRepo struct {
	db *gorm.DB
}

func NewProductStockRepo(db *gorm.DB) ProductStockRepository {
	return &productStockRepo{db}
}

func (r *productStockRepo) Create(stock *model.ProductStock) error {
	return r.db.Create(stock).Error
}

func (r *productStockRepo) Save(stock *model.ProductStock) error {
	return r.db.Save(stock).Error
}

func (r *productStockRepo) FindByID(id uuid.UUID) (*model.ProductStock, error) {
	var stock model.ProductStock
	err := r.db.Preload("Product").Preload("Variant").Preload("Branch").First(&stock, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &stock, nil
}

func (r *productStockRepo) FindAll(branchID *uuid.UUID) ([]model.ProductStock, error) {
	var stocks []model.ProductStock
	query := r.db.Preload("Product").Preload("Variant").Order("created_at DESC")
	if branchID != nil {
		query = query.Where("branch_id = ?", *branchID)
	}
	err := query.Find(&stocks).Error
	return stocks, err
}

func (r *productStockRepo) Delete(stock *model.ProductStock) error {
	return r.db.Delete(stock).Error
}

func (r *productStockRepo) FindByRef(ref model.ItemRef, branchID *uuid.UUID) (*model.ProductStock, error) {
	return r.findByRef(r.db, ref, branchID)
}

// FindByRefForUpdate locks the balance row for the rest of the transaction.
func (r *productStockRepo) FindByRefForUpdate(ref model.ItemRef, branchID *uuid.UUID) (*model.ProductStock, error) {
	return r.findByRef(r.db.Set("gorm:query_option", "FOR UPDATE"), ref, branchID)
}

func (r *productStockRepo) findByRef(db *gorm.DB, ref model.ItemRef, branchID *uuid.UUID) (*model.ProductStock, error) {
	var stock model.ProductStock
	query := db
	if ref.IsVariant() {
		query = query.Where("variant_id = ?", ref.ID)
	} else {
		query = query.Where("product_id = ? AND variant_id IS NULL", ref.ID)
	}
	if branchID != nil {
		query = query.Where("branch_id = ?", *branchID)
	}
	if err := query.First(&stock).Error; err != nil {
		return nil, err
	}
	return &stock, nil
}

// FindVariantStocksByProductForUpdate locks every variant balance of the
// product so a cross-variant deduction sees a consistent picture. Rows come
// back in storage order, not sorted; the fallback deduction walks them first
// to last.
func (r *productStockRepo) FindVariantStocksByProductForUpdate(productID uuid.UUID, branchID *uuid.UUID) ([]model.ProductStock, error) {
	var stocks []model.ProductStock
	query := r.db.Set("gorm:query_option", "FOR UPDATE").
		Joins("JOIN product_variants pv ON pv.id = product_stocks.variant_id").
		Where("pv.product_id = ?", productID)
	if branchID != nil {
		query = query.Where("product_stocks.branch_id = ?", *branchID)
	}
	err := query.Find(&stocks).Error
	return stocks, err
}
