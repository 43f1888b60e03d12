package model

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// Order is a sale draft and its line items. Only pending orders may be
// mutated or settled; completed and cancelled are terminal.
// Invariant: Subtotal == sum of item subtotals after every mutation.
type Order struct {
	BaseModel
	BranchID       *uuid.UUID  `gorm:"type:uuid;index" json:"branch_id"`
	Branch         *Branch     `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
	UserID         *uuid.UUID  `gorm:"type:uuid;index" json:"user_id"` // cashier
	User           *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CustomerID     *uuid.UUID  `gorm:"type:uuid;index" json:"customer_id"`
	Customer       *Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items          []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	InvoiceNumber  string      `gorm:"type:varchar(50);uniqueIndex;not null" json:"invoice_number"`
	Subtotal       int64       `gorm:"default:0" json:"subtotal"`
	TaxAmount      int64       `gorm:"default:0" json:"tax_amount"`
	DiscountAmount int64       `gorm:"default:0" json:"discount_amount"`
	Status         OrderStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Notes          string      `gorm:"type:text" json:"notes"`
}

func (Order) TableName() string {
	return "orders"
}

// TotalAmount is derived, never stored.
func (o *Order) TotalAmount() int64 {
	return o.Subtotal + o.TaxAmount - o.DiscountAmount
}

// Editable reports whether item mutations are still allowed.
func (o *Order) Editable() bool {
	return o.Status == OrderPending
}

// OrderItem is one line of an order. Price is snapshotted at add-time and
// never re-read from the catalog. For variant items ProductID carries the
// parent product for reporting; the variant is what was sold.
type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID *uuid.UUID      `gorm:"type:uuid;index" json:"product_id"`
	Product   *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	VariantID *uuid.UUID      `gorm:"type:uuid;index" json:"variant_id"`
	Variant   *ProductVariant `gorm:"foreignKey:VariantID" json:"variant,omitempty"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     int64           `gorm:"not null" json:"price"`
	Discount  int64           `gorm:"default:0" json:"discount"`
	Subtotal  int64           `gorm:"not null" json:"subtotal"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// Ref returns what this line sold: the variant when present, otherwise the
// bare product.
func (i *OrderItem) Ref() (ItemRef, bool) {
	if i.VariantID != nil && *i.VariantID != uuid.Nil {
		return VariantRef(*i.VariantID), true
	}
	if i.ProductID != nil && *i.ProductID != uuid.Nil {
		return ProductRef(*i.ProductID), true
	}
	return ItemRef{}, false
}

type OrderItemResponse struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	ProductID string    `json:"product_id"`
	VariantID string    `json:"variant_id"`
	Qty       int       `json:"qty"`
	Price     int64     `json:"price"`
	Subtotal  int64     `json:"subtotal"`
}

type OrderResponse struct {
	ID            uuid.UUID           `json:"id"`
	CustomerID    string              `json:"customer_id"`
	BranchID      string              `json:"branch_id"`
	UserID        string              `json:"user_id"`
	Items         []OrderItemResponse `json:"items"`
	InvoiceNumber string              `json:"invoice_number"`
	Subtotal      int64               `json:"subtotal"`
	TaxAmount     int64               `json:"tax_amount"`
	TotalAmount   int64               `json:"total_amount"`
	Status        OrderStatus         `json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func (o *Order) ToResponse() OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for idx := range o.Items {
		item := &o.Items[idx]
		items[idx] = OrderItemResponse{
			ID:        item.ID,
			OrderID:   o.ID,
			ProductID: uuidOrEmpty(item.ProductID),
			VariantID: uuidOrEmpty(item.VariantID),
			Qty:       item.Quantity,
			Price:     item.Price,
			Subtotal:  item.Subtotal,
		}
	}
	return OrderResponse{
		ID:            o.ID,
		CustomerID:    uuidOrEmpty(o.CustomerID),
		BranchID:      uuidOrEmpty(o.BranchID),
		UserID:        uuidOrEmpty(o.UserID),
		Items:         items,
		InvoiceNumber: o.InvoiceNumber,
		Subtotal:      o.Subtotal,
		TaxAmount:     o.TaxAmount,
		TotalAmount:   o.TotalAmount(),
		Status:        o.Status,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}
