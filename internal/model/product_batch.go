package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductBatch tracks a received intake of a variant at a branch, with its
// expiry date. Batches feed the ledger with purchase movements.
type ProductBatch struct {
	BaseModel
	VariantID uuid.UUID       `gorm:"type:uuid;not null;index" json:"variant_id"`
	Variant   *ProductVariant `gorm:"foreignKey:VariantID" json:"variant,omitempty"`
	BranchID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"branch_id"`
	Branch    *Branch         `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
	BatchCode string          `gorm:"type:varchar(100);not null" json:"batch_code"`
	ExpDate   time.Time       `gorm:"type:date" json:"exp_date"`
	Qty       int             `gorm:"default:0" json:"qty"`
}

func (ProductBatch) TableName() string {
	return "product_batches"
}

type ProductBatchResponse struct {
	ID        uuid.UUID `json:"id"`
	VariantID uuid.UUID `json:"variant_id"`
	BranchID  uuid.UUID `json:"branch_id"`
	BatchCode string    `json:"batch_code"`
	ExpDate   string    `json:"exp_date"`
	Qty       int       `json:"qty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *ProductBatch) ToResponse() ProductBatchResponse {
	return ProductBatchResponse{
		ID:        b.ID,
		VariantID: b.VariantID,
		BranchID:  b.BranchID,
		BatchCode: b.BatchCode,
		ExpDate:   b.ExpDate.Format("2006-01-02"),
		Qty:       b.Qty,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
