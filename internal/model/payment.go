package model

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentSuccess PaymentStatus = "success"
	// PaymentFailed is declared for completeness; no code path sets it.
	// Failed verifications roll back and leave the payment untouched.
	PaymentFailed PaymentStatus = "failed"
)

type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "cash"
	PaymentCreditCard PaymentMethod = "credit_card"
)

// Payment references its order by plain id, not a joined relation. Amount is
// snapshotted from the order total at creation time.
type Payment struct {
	BaseModel
	OrderID         uuid.UUID     `gorm:"type:uuid;not null;index" json:"order_id"`
	Status          PaymentStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Method          PaymentMethod `gorm:"type:varchar(20);default:'cash'" json:"method"`
	ReferenceNumber string        `gorm:"type:varchar(100)" json:"reference_number"`
	Amount          int64         `gorm:"default:0" json:"amount"`
	PaidAt          *time.Time    `json:"paid_at"`
}

func (Payment) TableName() string {
	return "payments"
}

type PaymentResponse struct {
	ID            uuid.UUID     `json:"id"`
	OrderID       uuid.UUID     `json:"orderId"`
	Amount        int64         `json:"amount"`
	Status        PaymentStatus `json:"status"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	PaidAt        *time.Time    `json:"paid_at"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

func (p *Payment) ToResponse() PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		OrderID:       p.OrderID,
		Amount:        p.Amount,
		Status:        p.Status,
		PaymentMethod: p.Method,
		PaidAt:        p.PaidAt,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
