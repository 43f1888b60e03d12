package service

import (
	"time"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/internal/ws"

	"github.com/google/uuid"
)

type PaymentService interface {
	CreatePayment(req *CreatePaymentRequest) (*model.Payment, error)
	VerifyPayment(paymentID uuid.UUID) (*model.Payment, error)
	GetPayment(id uuid.UUID) (*model.Payment, error)
	GetPayments(orderID *uuid.UUID) ([]model.Payment, error)
}

type CreatePaymentRequest struct {
	OrderID         uuid.UUID           `json:"order_id" validate:"uuid_required"`
	Method          model.PaymentMethod `json:"payment_method" validate:"required,oneof=cash credit_card"`
	ReferenceNumber string              `json:"reference_number"`
}

type paymentService struct {
	uow      repository.UnitOfWork
	orders   repository.OrderRepository
	payments repository.PaymentRepository
	wsHub    *ws.Hub
}

func NewPaymentService(
	uow repository.UnitOfWork,
	orders repository.OrderRepository,
	payments repository.PaymentRepository,
	hub *ws.Hub,
) PaymentService {
	return &paymentService{
		uow:      uow,
		orders:   orders,
		payments: payments,
		wsHub:    hub,
	}
}

// CreatePayment records a payment for a pending order. The amount is
// snapshotted from the order total. The payment is marked success with a
// paid_at timestamp right away; stock is only touched at verification.
func (s *paymentService) CreatePayment(req *CreatePaymentRequest) (*model.Payment, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	order, err := s.orders.FindByID(req.OrderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	if order.Status != model.OrderPending {
		return nil, ErrOrderNotPending
	}

	now := time.Now()
	payment := &model.Payment{
		OrderID:         order.ID,
		Status:          model.PaymentSuccess,
		Method:          req.Method,
		ReferenceNumber: req.ReferenceNumber,
		Amount:          order.TotalAmount(),
		PaidAt:          &now,
	}
	if err := s.payments.Create(payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// lowStockAlert is broadcast after settlement for rows at or below their
// reorder threshold.
type lowStockAlert struct {
	StockID   uuid.UUID `json:"stock_id"`
	ProductID string    `json:"product_id"`
	VariantID string    `json:"variant_id"`
	BranchID  uuid.UUID `json:"branch_id"`
	Stock     int       `json:"stock"`
	MinStock  int       `json:"min_stock"`
}

// VerifyPayment settles the order: every line's quantity is deducted from
// stock and a sale movement is appended per touched balance row, all inside
// one transaction. Any failure rolls the whole settlement back and leaves
// the order pending.
func (s *paymentService) VerifyPayment(paymentID uuid.UUID) (*model.Payment, error) {
	payment, err := s.payments.FindByID(paymentID)
	if err != nil {
		return nil, ErrPaymentNotFound
	}

	var alerts []lowStockAlert
	var settled *model.Order
	err = s.uow.Run(func(repos repository.RepoSet) error {
		order, err := repos.Orders.FindByID(payment.OrderID)
		if err != nil {
			return ErrOrderNotFound
		}
		if order.Status != model.OrderPending {
			return ErrOrderNotPending
		}
		if len(order.Items) == 0 {
			return ErrOrderEmpty
		}

		for i := range order.Items {
			item := &order.Items[i]
			ref, ok := item.Ref()
			if !ok {
				return ErrItemRefRequired
			}
			var err error
			if ref.IsVariant() {
				err = s.deductVariant(repos, order, item, ref, &alerts)
			} else {
				err = s.deductProduct(repos, order, item, ref, &alerts)
			}
			if err != nil {
				return err
			}
		}

		order.Status = model.OrderCompleted
		if err := repos.Orders.Save(order); err != nil {
			return err
		}
		settled = order

		now := time.Now()
		payment.Status = model.PaymentSuccess
		if payment.PaidAt == nil {
			payment.PaidAt = &now
		}
		return repos.Payments.Save(payment)
	})
	if err != nil {
		return nil, err
	}

	s.broadcastSettlement(settled, payment, alerts)
	return payment, nil
}

func (s *paymentService) deductVariant(repos repository.RepoSet, order *model.Order, item *model.OrderItem, ref model.ItemRef, alerts *[]lowStockAlert) error {
	stock, err := repos.Stocks.FindByRefForUpdate(ref, order.BranchID)
	if err != nil {
		return ErrVariantStockNotFound
	}
	if stock.Stock < item.Quantity {
		return ErrVariantStockInsufficient
	}
	stock.Stock -= item.Quantity
	if err := repos.Stocks.Save(stock); err != nil {
		return err
	}
	if err := s.recordSale(repos, order, stock, item.Quantity); err != nil {
		return err
	}
	collectLowStock(alerts, stock)
	return nil
}

// deductProduct takes from the product's own balance row when one exists.
// Without one it walks the product's variant rows first to last, skipping
// empties, until the quantity is covered.
func (s *paymentService) deductProduct(repos repository.RepoSet, order *model.Order, item *model.OrderItem, ref model.ItemRef, alerts *[]lowStockAlert) error {
	stock, err := repos.Stocks.FindByRefForUpdate(ref, order.BranchID)
	if err == nil {
		if stock.Stock < item.Quantity {
			return ErrProductStockInsufficient
		}
		stock.Stock -= item.Quantity
		if err := repos.Stocks.Save(stock); err != nil {
			return err
		}
		if err := s.recordSale(repos, order, stock, item.Quantity); err != nil {
			return err
		}
		collectLowStock(alerts, stock)
		return nil
	}

	variantStocks, err := repos.Stocks.FindVariantStocksByProductForUpdate(ref.ID, order.BranchID)
	if err != nil {
		return err
	}
	if len(variantStocks) == 0 {
		return ErrProductStockNotFound
	}

	remaining := item.Quantity
	for i := range variantStocks {
		if remaining == 0 {
			break
		}
		vs := &variantStocks[i]
		if vs.Stock <= 0 {
			continue
		}
		take := remaining
		if vs.Stock < take {
			take = vs.Stock
		}
		vs.Stock -= take
		remaining -= take
		if err := repos.Stocks.Save(vs); err != nil {
			return err
		}
		if err := s.recordSale(repos, order, vs, take); err != nil {
			return err
		}
		collectLowStock(alerts, vs)
	}
	if remaining > 0 {
		return ErrProductStockInsufficient
	}
	return nil
}

// recordSale appends the ledger entry for one touched balance row. Orders
// without a branch settle balances only; the ledger is branch-scoped.
func (s *paymentService) recordSale(repos repository.RepoSet, order *model.Order, stock *model.ProductStock, qty int) error {
	if order.BranchID == nil {
		return nil
	}
	return repos.Movements.Create(&model.StockMovement{
		ProductID:     stock.ProductID,
		VariantID:     stock.VariantID,
		BranchID:      *order.BranchID,
		ReferenceType: model.RefTypeSale,
		Qty:           qty,
		ReferenceID:   order.ID,
	})
}

func collectLowStock(alerts *[]lowStockAlert, stock *model.ProductStock) {
	if stock.MinStock <= 0 || stock.Stock > stock.MinStock {
		return
	}
	*alerts = append(*alerts, lowStockAlert{
		StockID:   stock.ID,
		ProductID: uuidString(stock.ProductID),
		VariantID: uuidString(stock.VariantID),
		BranchID:  stock.BranchID,
		Stock:     stock.Stock,
		MinStock:  stock.MinStock,
	})
}

func uuidString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

// broadcastSettlement notifies websocket clients after the transaction has
// committed, never from inside it.
func (s *paymentService) broadcastSettlement(order *model.Order, payment *model.Payment, alerts []lowStockAlert) {
	if s.wsHub == nil || order == nil {
		return
	}
	go func() {
		payload := map[string]interface{}{
			"type":    "order_settled",
			"action":  "payment_verified",
			"order":   order.ToResponse(),
			"payment": payment.ToResponse(),
		}
		if len(alerts) > 0 {
			payload["low_stock"] = alerts
		}
		s.wsHub.BroadcastJSON(payload)
	}()
}

func (s *paymentService) GetPayment(id uuid.UUID) (*model.Payment, error) {
	payment, err := s.payments.FindByID(id)
	if err != nil {
		return nil, ErrPaymentNotFound
	}
	return payment, nil
}

func (s *paymentService) GetPayments(orderID *uuid.UUID) ([]model.Payment, error) {
	return s.payments.FindAll(orderID)
}
