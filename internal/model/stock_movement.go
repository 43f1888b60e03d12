package model

import (
	"time"

	"github.com/google/uuid"
)

// ReferenceType explains what caused a stock movement.
type ReferenceType string

const (
	RefTypeSale     ReferenceType = "sale"
	RefTypePurchase ReferenceType = "purchase"
	RefTypeAdjust   ReferenceType = "adjust"
)

// StockMovement is an append-only ledger entry: the signed magnitude of a
// historical stock change, never a running balance. The settlement flow and
// the manual adjustment paths write here; nothing updates or deletes rows.
type StockMovement struct {
	BaseModel
	ProductID     *uuid.UUID      `gorm:"type:uuid;index" json:"product_id"`
	Product       *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	VariantID     *uuid.UUID      `gorm:"type:uuid;index" json:"variant_id"`
	Variant       *ProductVariant `gorm:"foreignKey:VariantID" json:"variant,omitempty"`
	BranchID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"branch_id"`
	Branch        *Branch         `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
	ReferenceType ReferenceType   `gorm:"type:varchar(20);not null" json:"reference_type"`
	Qty           int             `gorm:"not null" json:"qty"`
	ReferenceID   uuid.UUID       `gorm:"type:uuid;index" json:"reference_id"` // order, stock-row or batch that caused this
}

func (StockMovement) TableName() string {
	return "stock_movements"
}

type StockMovementResponse struct {
	ID            uuid.UUID     `json:"id"`
	ProductID     string        `json:"product_id"`
	VariantID     string        `json:"variant_id"`
	BranchID      uuid.UUID     `json:"branch_id"`
	ReferenceType ReferenceType `json:"reference_type"`
	Qty           int           `json:"qty"`
	ReferenceID   uuid.UUID     `json:"reference_id"`
	CreatedAt     time.Time     `json:"created_at"`
}

func (m *StockMovement) ToResponse() StockMovementResponse {
	return StockMovementResponse{
		ID:            m.ID,
		ProductID:     uuidOrEmpty(m.ProductID),
		VariantID:     uuidOrEmpty(m.VariantID),
		BranchID:      m.BranchID,
		ReferenceType: m.ReferenceType,
		Qty:           m.Qty,
		ReferenceID:   m.ReferenceID,
		CreatedAt:     m.CreatedAt,
	}
}
