package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductStock is the current balance for a product or variant at a branch.
// One row per (ref, branch) pair; the ledger (StockMovement) explains how the
// balance got here. Stock must never go negative.
type ProductStock struct {
	BaseModel
	ProductID *uuid.UUID      `gorm:"type:uuid;index" json:"product_id"`
	Product   *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	VariantID *uuid.UUID      `gorm:"type:uuid;index" json:"variant_id"`
	Variant   *ProductVariant `gorm:"foreignKey:VariantID" json:"variant,omitempty"`
	BranchID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"branch_id"`
	Branch    *Branch         `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
	Stock     int             `gorm:"default:0" json:"stock"`
	MinStock  int             `gorm:"default:0" json:"min_stock"` // reorder threshold, informational
}

func (ProductStock) TableName() string {
	return "product_stocks"
}

// Ref returns the tagged product-or-variant reference this row is scoped to.
// A variant-level row wins over its parent product column.
func (s *ProductStock) Ref() (ItemRef, bool) {
	if s.VariantID != nil && *s.VariantID != uuid.Nil {
		return VariantRef(*s.VariantID), true
	}
	if s.ProductID != nil && *s.ProductID != uuid.Nil {
		return ProductRef(*s.ProductID), true
	}
	return ItemRef{}, false
}

type ProductStockResponse struct {
	ID        uuid.UUID `json:"id"`
	ProductID string    `json:"product_id"`
	VariantID string    `json:"variant_id"`
	BranchID  uuid.UUID `json:"branch_id"`
	Stock     int       `json:"stock"`
	MinStock  int       `json:"min_stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *ProductStock) ToResponse() ProductStockResponse {
	return ProductStockResponse{
		ID:        s.ID,
		ProductID: uuidOrEmpty(s.ProductID),
		VariantID: uuidOrEmpty(s.VariantID),
		BranchID:  s.BranchID,
		Stock:     s.Stock,
		MinStock:  s.MinStock,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func uuidOrEmpty(id *uuid.UUID) string {
	if id == nil || *id == uuid.Nil {
		return ""
	}
	return id.String()
}
