package service

import (
	"fmt"
	"time"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"

	"github.com/google/uuid"
)

type OrderService interface {
	CreateOrder(req *CreateOrderRequest) (*model.Order, error)
	GetOrder(id uuid.UUID) (*model.Order, error)
	GetOrders(branchID *uuid.UUID, status string) ([]model.Order, error)
	UpdateItemQuantity(orderID, itemID uuid.UUID, quantity int) (*model.Order, error)
	RemoveItem(orderID, itemID uuid.UUID) (*model.Order, error)
	AssignCustomer(orderID, customerID uuid.UUID) (*model.Order, error)
	CancelOrder(orderID uuid.UUID) (*model.Order, error)
}

// CreateOrderRequest creates a new draft or merges lines into an existing
// pending one when OrderID is set.
type CreateOrderRequest struct {
	OrderID    *uuid.UUID         `json:"order_id"`
	BranchID   *uuid.UUID         `json:"branch_id"`
	CustomerID *uuid.UUID         `json:"customer_id"`
	UserID     *uuid.UUID         `json:"-"`
	Notes      string             `json:"notes"`
	Items      []OrderItemRequest `json:"items"`
}

type OrderItemRequest struct {
	ProductID *uuid.UUID `json:"product_id"`
	VariantID *uuid.UUID `json:"variant_id"`
	Quantity  int        `json:"qty"`
	Price     int64      `json:"price"`
}

type orderService struct {
	uow       repository.UnitOfWork
	orders    repository.OrderRepository
	products  repository.ProductRepository
	variants  repository.VariantRepository
	customers repository.CustomerRepository
	stocks    repository.ProductStockRepository
}

func NewOrderService(
	uow repository.UnitOfWork,
	orders repository.OrderRepository,
	products repository.ProductRepository,
	variants repository.VariantRepository,
	customers repository.CustomerRepository,
	stocks repository.ProductStockRepository,
) OrderService {
	return &orderService{
		uow:       uow,
		orders:    orders,
		products:  products,
		variants:  variants,
		customers: customers,
		stocks:    stocks,
	}
}

// aggregatedLine is one collapsed request line. Duplicate refs in the request
// sum their quantities; the price of the last duplicate wins.
type aggregatedLine struct {
	ref       model.ItemRef
	productID *uuid.UUID // parent product for variant lines, for reporting
	variantID *uuid.UUID
	quantity  int
	price     int64
}

func (s *orderService) CreateOrder(req *CreateOrderRequest) (*model.Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrOrderEmpty
	}

	lines, err := s.aggregate(req.Items)
	if err != nil {
		return nil, err
	}
	if err := s.resolveRefs(lines); err != nil {
		return nil, err
	}
	if req.CustomerID != nil {
		if _, err := s.customers.FindByID(*req.CustomerID); err != nil {
			return nil, ErrCustomerNotFound
		}
	}

	// Availability is checked before opening the transaction. The pending
	// order never holds stock; the definitive check happens at settlement.
	for _, line := range lines {
		if err := s.checkAvailability(line, req.BranchID); err != nil {
			return nil, err
		}
	}

	var target *model.Order
	if req.OrderID != nil {
		existing, err := s.orders.FindByID(*req.OrderID)
		// A missing or closed order is treated as absent: a fresh draft
		// is created instead of failing the request.
		if err == nil && existing.Editable() {
			target = existing
		}
	}

	var result *model.Order
	err = s.uow.Run(func(repos repository.RepoSet) error {
		if target == nil {
			order := &model.Order{
				BranchID:      req.BranchID,
				UserID:        req.UserID,
				CustomerID:    req.CustomerID,
				InvoiceNumber: fmt.Sprintf("INV-%d", time.Now().UnixMilli()),
				Status:        model.OrderPending,
				Notes:         req.Notes,
			}
			for _, line := range lines {
				order.Items = append(order.Items, model.OrderItem{
					ProductID: line.productID,
					VariantID: line.variantID,
					Quantity:  line.quantity,
					Price:     line.price,
					Subtotal:  line.price * int64(line.quantity),
				})
			}
			order.Subtotal = sumItemSubtotals(order.Items)
			if err := repos.Orders.Create(order); err != nil {
				return err
			}
			result = order
			return nil
		}

		// Merge into the existing draft: matching lines sum quantities and
		// take the incoming price, new refs append.
		for _, line := range lines {
			merged := false
			for i := range target.Items {
				ref, ok := target.Items[i].Ref()
				if !ok || ref != line.ref {
					continue
				}
				item := &target.Items[i]
				item.Quantity += line.quantity
				item.Price = line.price
				item.Subtotal = item.Price * int64(item.Quantity)
				if err := repos.Orders.SaveItem(item); err != nil {
					return err
				}
				merged = true
				break
			}
			if merged {
				continue
			}
			item := model.OrderItem{
				OrderID:   target.ID,
				ProductID: line.productID,
				VariantID: line.variantID,
				Quantity:  line.quantity,
				Price:     line.price,
				Subtotal:  line.price * int64(line.quantity),
			}
			if err := repos.Orders.SaveItem(&item); err != nil {
				return err
			}
			target.Items = append(target.Items, item)
		}
		if req.CustomerID != nil {
			target.CustomerID = req.CustomerID
		}
		if req.Notes != "" {
			target.Notes = req.Notes
		}
		target.Subtotal = sumItemSubtotals(target.Items)
		if err := repos.Orders.Save(target); err != nil {
			return err
		}
		result = target
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.orders.FindByID(result.ID)
}

// aggregate collapses duplicate refs while keeping first-seen order, so the
// resulting lines are deterministic for the same request.
func (s *orderService) aggregate(items []OrderItemRequest) ([]*aggregatedLine, error) {
	byKey := make(map[string]*aggregatedLine)
	var keys []string
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		ref, err := model.NewItemRef(item.ProductID, item.VariantID)
		if err != nil {
			return nil, ErrItemRefRequired
		}
		key := ref.Key()
		line, ok := byKey[key]
		if !ok {
			line = &aggregatedLine{ref: ref}
			if ref.IsVariant() {
				id := ref.ID
				line.variantID = &id
			} else {
				id := ref.ID
				line.productID = &id
			}
			byKey[key] = line
			keys = append(keys, key)
		}
		line.quantity += item.Quantity
		line.price = item.Price
	}
	lines := make([]*aggregatedLine, len(keys))
	for i, key := range keys {
		lines[i] = byKey[key]
	}
	return lines, nil
}

// resolveRefs verifies each line against the catalog and fills the parent
// product for variant lines. The request price is kept as-is; it is a
// snapshot taken at add time, never re-read from the catalog.
func (s *orderService) resolveRefs(lines []*aggregatedLine) error {
	var variantIDs []uuid.UUID
	for _, line := range lines {
		if line.ref.IsVariant() {
			variantIDs = append(variantIDs, line.ref.ID)
		}
	}
	variantsByID := make(map[uuid.UUID]model.ProductVariant)
	if len(variantIDs) > 0 {
		variants, err := s.variants.FindByIDs(variantIDs)
		if err != nil {
			return err
		}
		for _, v := range variants {
			variantsByID[v.ID] = v
		}
	}

	for _, line := range lines {
		if line.ref.IsVariant() {
			variant, ok := variantsByID[line.ref.ID]
			if !ok {
				return ErrVariantNotFound
			}
			productID := variant.ProductID
			line.productID = &productID
			continue
		}
		if _, err := s.products.FindByID(line.ref.ID); err != nil {
			return ErrProductNotFound
		}
	}
	return nil
}

// checkAvailability is the pre-transaction balance check against the line's
// own balance row. Walking a product's variant rows happens only at
// settlement, never here.
func (s *orderService) checkAvailability(line *aggregatedLine, branchID *uuid.UUID) error {
	stock, err := s.stocks.FindByRef(line.ref, branchID)
	if line.ref.IsVariant() {
		if err != nil {
			return ErrVariantStockNotFound
		}
		if stock.Stock < line.quantity {
			return ErrVariantStockInsufficient
		}
		return nil
	}
	if err != nil {
		return ErrProductStockNotFound
	}
	if stock.Stock < line.quantity {
		return ErrProductStockInsufficient
	}
	return nil
}

func sumItemSubtotals(items []model.OrderItem) int64 {
	var total int64
	for i := range items {
		total += items[i].Subtotal
	}
	return total
}

func (s *orderService) GetOrder(id uuid.UUID) (*model.Order, error) {
	order, err := s.orders.FindByID(id)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *orderService) GetOrders(branchID *uuid.UUID, status string) ([]model.Order, error) {
	return s.orders.FindAll(branchID, status)
}

func (s *orderService) UpdateItemQuantity(orderID, itemID uuid.UUID, quantity int) (*model.Order, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	if !order.Editable() {
		return nil, ErrOrderNotEditable
	}

	var item *model.OrderItem
	for i := range order.Items {
		if order.Items[i].ID == itemID {
			item = &order.Items[i]
			break
		}
	}
	if item == nil {
		return nil, ErrOrderItemNotFound
	}

	// No balance check here. A draft never holds stock, so raising the
	// quantity past the current balance is allowed; settlement is the gate.
	err = s.uow.Run(func(repos repository.RepoSet) error {
		item.Quantity = quantity
		item.Subtotal = item.Price * int64(quantity)
		if err := repos.Orders.SaveItem(item); err != nil {
			return err
		}
		order.Subtotal = sumItemSubtotals(order.Items)
		return repos.Orders.Save(order)
	})
	if err != nil {
		return nil, err
	}
	return s.orders.FindByID(orderID)
}

func (s *orderService) RemoveItem(orderID, itemID uuid.UUID) (*model.Order, error) {
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	if !order.Editable() {
		return nil, ErrOrderNotEditable
	}

	idx := -1
	for i := range order.Items {
		if order.Items[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrOrderItemNotFound
	}

	err = s.uow.Run(func(repos repository.RepoSet) error {
		if err := repos.Orders.DeleteItem(&order.Items[idx]); err != nil {
			return err
		}
		order.Items = append(order.Items[:idx], order.Items[idx+1:]...)
		order.Subtotal = sumItemSubtotals(order.Items)
		return repos.Orders.Save(order)
	})
	if err != nil {
		return nil, err
	}
	return s.orders.FindByID(orderID)
}

func (s *orderService) AssignCustomer(orderID, customerID uuid.UUID) (*model.Order, error) {
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	if !order.Editable() {
		return nil, ErrOrderNotEditable
	}
	if _, err := s.customers.FindByID(customerID); err != nil {
		return nil, ErrCustomerNotFound
	}
	order.CustomerID = &customerID
	if err := s.orders.Save(order); err != nil {
		return nil, err
	}
	return s.orders.FindByID(orderID)
}

// CancelOrder closes a pending draft without touching stock. Nothing was
// ever deducted for a draft, so there is nothing to put back.
func (s *orderService) CancelOrder(orderID uuid.UUID) (*model.Order, error) {
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	if order.Status != model.OrderPending {
		return nil, ErrOrderNotPending
	}
	order.Status = model.OrderCancelled
	if err := s.orders.Save(order); err != nil {
		return nil, err
	}
	return s.orders.FindByID(orderID)
}
