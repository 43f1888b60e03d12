// Package memory is an in-memory implementation of the repository
// interfaces, used by the service tests so they run without PostgreSQL.
// Lookups return gorm.ErrRecordNotFound on miss so error handling matches
// the database-backed repositories.
package memory

import (
	"strings"
	"sync"
	"time"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Store struct {
	mu sync.RWMutex

	orders    map[uuid.UUID]*model.Order
	orderIDs  []uuid.UUID
	payments  map[uuid.UUID]*model.Payment
	payIDs    []uuid.UUID
	stocks    map[uuid.UUID]*model.ProductStock
	stockIDs  []uuid.UUID
	movements []model.StockMovement
	batches   map[uuid.UUID]*model.ProductBatch
	batchIDs  []uuid.UUID

	products   map[uuid.UUID]*model.Product
	productIDs []uuid.UUID
	variants   map[uuid.UUID]*model.ProductVariant
	variantIDs []uuid.UUID
	categories map[uuid.UUID]*model.Category
	customers  map[uuid.UUID]*model.Customer
}

func NewStore() *Store {
	return &Store{
		orders:     map[uuid.UUID]*model.Order{},
		payments:   map[uuid.UUID]*model.Payment{},
		stocks:     map[uuid.UUID]*model.ProductStock{},
		batches:    map[uuid.UUID]*model.ProductBatch{},
		products:   map[uuid.UUID]*model.Product{},
		variants:   map[uuid.UUID]*model.ProductVariant{},
		categories: map[uuid.UUID]*model.Category{},
		customers:  map[uuid.UUID]*model.Customer{},
	}
}

func touch(base *model.BaseModel) {
	now := time.Now()
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	if base.CreatedAt.IsZero() {
		base.CreatedAt = now
	}
	base.UpdatedAt = now
}

// RepoSet exposes the store through the same bundle the transactional
// services receive in production.
func (s *Store) RepoSet() repository.RepoSet {
	return repository.RepoSet{
		Orders:    &OrderRepo{s},
		Payments:  &PaymentRepo{s},
		Stocks:    &StockRepo{s},
		Movements: &MovementRepo{s},
		Batches:   &BatchRepo{s},
	}
}

func (s *Store) Orders() repository.OrderRepository            { return &OrderRepo{s} }
func (s *Store) Payments() repository.PaymentRepository        { return &PaymentRepo{s} }
func (s *Store) Stocks() repository.ProductStockRepository     { return &StockRepo{s} }
func (s *Store) Movements() repository.StockMovementRepository { return &MovementRepo{s} }
func (s *Store) Batches() repository.ProductBatchRepository    { return &BatchRepo{s} }
func (s *Store) Products() repository.ProductRepository        { return &ProductRepo{s} }
func (s *Store) Variants() repository.VariantRepository        { return &VariantRepo{s} }
func (s *Store) Customers() repository.CustomerRepository      { return &CustomerRepo{s} }
func (s *Store) Categories() repository.CategoryRepository     { return &CategoryRepo{s} }

// Run implements repository.UnitOfWork with snapshot semantics: the whole
// store is copied up front and restored if fn fails, so partial writes
// never survive an error.
func (s *Store) Run(fn func(repos repository.RepoSet) error) error {
	snap := s.snapshot()
	if err := fn(s.RepoSet()); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

type snapshot struct {
	orders    map[uuid.UUID]*model.Order
	orderIDs  []uuid.UUID
	payments  map[uuid.UUID]*model.Payment
	payIDs    []uuid.UUID
	stocks    map[uuid.UUID]*model.ProductStock
	stockIDs  []uuid.UUID
	movements []model.StockMovement
	batches   map[uuid.UUID]*model.ProductBatch
	batchIDs  []uuid.UUID
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := snapshot{
		orders:    make(map[uuid.UUID]*model.Order, len(s.orders)),
		orderIDs:  append([]uuid.UUID(nil), s.orderIDs...),
		payments:  make(map[uuid.UUID]*model.Payment, len(s.payments)),
		payIDs:    append([]uuid.UUID(nil), s.payIDs...),
		stocks:    make(map[uuid.UUID]*model.ProductStock, len(s.stocks)),
		stockIDs:  append([]uuid.UUID(nil), s.stockIDs...),
		movements: append([]model.StockMovement(nil), s.movements...),
		batches:   make(map[uuid.UUID]*model.ProductBatch, len(s.batches)),
		batchIDs:  append([]uuid.UUID(nil), s.batchIDs...),
	}
	for id, o := range s.orders {
		snap.orders[id] = cloneOrder(o)
	}
	for id, p := range s.payments {
		c := *p
		snap.payments[id] = &c
	}
	for id, st := range s.stocks {
		c := *st
		snap.stocks[id] = &c
	}
	for id, b := range s.batches {
		c := *b
		snap.batches[id] = &c
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = snap.orders
	s.orderIDs = snap.orderIDs
	s.payments = snap.payments
	s.payIDs = snap.payIDs
	s.stocks = snap.stocks
	s.stockIDs = snap.stockIDs
	s.movements = snap.movements
	s.batches = snap.batches
	s.batchIDs = snap.batchIDs
}

func cloneOrder(o *model.Order) *model.Order {
	c := *o
	c.Items = append([]model.OrderItem(nil), o.Items...)
	return &c
}

// --- orders ---

type OrderRepo struct{ s *Store }

func (r *OrderRepo) Create(order *model.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	touch(&order.BaseModel)
	for i := range order.Items {
		touch(&order.Items[i].BaseModel)
		order.Items[i].OrderID = order.ID
	}
	r.s.orders[order.ID] = cloneOrder(order)
	r.s.orderIDs = append(r.s.orderIDs, order.ID)
	return nil
}

func (r *OrderRepo) Save(order *model.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.orders[order.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	order.UpdatedAt = time.Now()
	c := *order
	c.Items = existing.Items // items are saved through SaveItem only
	r.s.orders[order.ID] = &c
	return nil
}

func (r *OrderRepo) FindByID(id uuid.UUID) (*model.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	o, ok := r.s.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := cloneOrder(o)
	r.s.attachItemCatalog(out)
	return out, nil
}

func (r *OrderRepo) FindAll(branchID *uuid.UUID, status string) ([]model.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.Order
	for i := len(r.s.orderIDs) - 1; i >= 0; i-- {
		o := r.s.orders[r.s.orderIDs[i]]
		if branchID != nil && (o.BranchID == nil || *o.BranchID != *branchID) {
			continue
		}
		if status != "" && string(o.Status) != status {
			continue
		}
		out = append(out, *cloneOrder(o))
	}
	return out, nil
}

func (r *OrderRepo) FindByIDs(ids []uuid.UUID) ([]model.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.Order
	for _, id := range ids {
		if o, ok := r.s.orders[id]; ok {
			out = append(out, *cloneOrder(o))
		}
	}
	return out, nil
}

func (r *OrderRepo) SaveItem(item *model.OrderItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[item.OrderID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	touch(&item.BaseModel)
	for i := range o.Items {
		if o.Items[i].ID == item.ID {
			o.Items[i] = *item
			return nil
		}
	}
	o.Items = append(o.Items, *item)
	return nil
}

func (r *OrderRepo) DeleteItem(item *model.OrderItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[item.OrderID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for i := range o.Items {
		if o.Items[i].ID == item.ID {
			o.Items = append(o.Items[:i], o.Items[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// attachItemCatalog fills the Product/Variant relations the way the gorm
// repo preloads them. Caller holds at least a read lock.
func (s *Store) attachItemCatalog(o *model.Order) {
	for i := range o.Items {
		item := &o.Items[i]
		if item.ProductID != nil {
			if p, ok := s.products[*item.ProductID]; ok {
				c := *p
				item.Product = &c
			}
		}
		if item.VariantID != nil {
			if v, ok := s.variants[*item.VariantID]; ok {
				c := *v
				item.Variant = &c
			}
		}
	}
}

// --- payments ---

type PaymentRepo struct{ s *Store }

func (r *PaymentRepo) Create(payment *model.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	touch(&payment.BaseModel)
	c := *payment
	r.s.payments[payment.ID] = &c
	r.s.payIDs = append(r.s.payIDs, payment.ID)
	return nil
}

func (r *PaymentRepo) Save(payment *model.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.payments[payment.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	payment.UpdatedAt = time.Now()
	c := *payment
	r.s.payments[payment.ID] = &c
	return nil
}

func (r *PaymentRepo) FindByID(id uuid.UUID) (*model.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.payments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	c := *p
	return &c, nil
}

func (r *PaymentRepo) FindAll(orderID *uuid.UUID) ([]model.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.Payment
	for i := len(r.s.payIDs) - 1; i >= 0; i-- {
		p := r.s.payments[r.s.payIDs[i]]
		if orderID != nil && p.OrderID != *orderID {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *PaymentRepo) FindSuccessBetween(startDate, endDate time.Time) ([]model.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.Payment
	for _, id := range r.s.payIDs {
		p := r.s.payments[id]
		if p.Status != model.PaymentSuccess || p.PaidAt == nil {
			continue
		}
		if p.PaidAt.Before(startDate) || p.PaidAt.After(endDate) {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

// --- product stocks ---

type StockRepo struct{ s *Store }

func (r *StockRepo) Create(stock *model.ProductStock) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	touch(&stock.BaseModel)
	c := *stock
	r.s.stocks[stock.ID] = &c
	r.s.stockIDs = append(r.s.stockIDs, stock.ID)
	return nil
}

func (r *StockRepo) Save(stock *model.ProductStock) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.stocks[stock.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stock.UpdatedAt = time.Now()
	c := *stock
	r.s.stocks[stock.ID] = &c
	return nil
}

func (r *StockRepo) FindByID(id uuid.UUID) (*model.ProductStock, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	st, ok := r.s.stocks[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	c := *st
	return &c, nil
}

func (r *StockRepo) FindAll(branchID *uuid.UUID) ([]model.ProductStock, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.ProductStock
	for i := len(r.s.stockIDs) - 1; i >= 0; i-- {
		st := r.s.stocks[r.s.stockIDs[i]]
		if branchID != nil && st.BranchID != *branchID {
			continue
		}
		out = append(out, *st)
	}
	return out, nil
}

func (r *StockRepo) Delete(stock *model.ProductStock) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.stocks[stock.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.s.stocks, stock.ID)
	for i, id := range r.s.stockIDs {
		if id == stock.ID {
			r.s.stockIDs = append(r.s.stockIDs[:i], r.s.stockIDs[i+1:]...)
			break
		}
	}
	return nil
}

func (r *StockRepo) FindByRef(ref model.ItemRef, branchID *uuid.UUID) (*model.ProductStock, error) {
	return r.findByRef(ref, branchID)
}

func (r *StockRepo) FindByRefForUpdate(ref model.ItemRef, branchID *uuid.UUID) (*model.ProductStock, error) {
	return r.findByRef(ref, branchID)
}

func (r *StockRepo) findByRef(ref model.ItemRef, branchID *uuid.UUID) (*model.ProductStock, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, id := range r.s.stockIDs {
		st := r.s.stocks[id]
		if branchID != nil && st.BranchID != *branchID {
			continue
		}
		if ref.IsVariant() {
			if st.VariantID == nil || *st.VariantID != ref.ID {
				continue
			}
		} else {
			if st.VariantID != nil || st.ProductID == nil || *st.ProductID != ref.ID {
				continue
			}
		}
		c := *st
		return &c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *StockRepo) FindVariantStocksByProductForUpdate(productID uuid.UUID, branchID *uuid.UUID) ([]model.ProductStock, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.ProductStock
	for _, id := range r.s.stockIDs {
		st := r.s.stocks[id]
		if st.VariantID == nil {
			continue
		}
		v, ok := r.s.variants[*st.VariantID]
		if !ok || v.ProductID != productID {
			continue
		}
		if branchID != nil && st.BranchID != *branchID {
			continue
		}
		out = append(out, *st)
	}
	return out, nil
}

// --- stock movements ---

type MovementRepo struct{ s *Store }

func (r *MovementRepo) Create(movement *model.StockMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	touch(&movement.BaseModel)
	r.s.movements = append(r.s.movements, *movement)
	return nil
}

func (r *MovementRepo) FindByID(id uuid.UUID) (*model.StockMovement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := range r.s.movements {
		if r.s.movements[i].ID == id {
			c := r.s.movements[i]
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *MovementRepo) FindAll(branchID *uuid.UUID, refType model.ReferenceType) ([]model.StockMovement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.StockMovement
	for i := len(r.s.movements) - 1; i >= 0; i-- {
		m := r.s.movements[i]
		if branchID != nil && m.BranchID != *branchID {
			continue
		}
		if refType != "" && m.ReferenceType != refType {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *MovementRepo) FindByReference(referenceID uuid.UUID) ([]model.StockMovement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.StockMovement
	for _, m := range r.s.movements {
		if m.ReferenceID == referenceID {
			out = append(out, m)
		}
	}
	return out, nil
}

// --- product batches ---

type BatchRepo struct{ s *Store }

func (r *BatchRepo) Create(batch *model.ProductBatch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	touch(&batch.BaseModel)
	c := *batch
	r.s.batches[batch.ID] = &c
	r.s.batchIDs = append(r.s.batchIDs, batch.ID)
	return nil
}

func (r *BatchRepo) Save(batch *model.ProductBatch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.batches[batch.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	batch.UpdatedAt = time.Now()
	c := *batch
	r.s.batches[batch.ID] = &c
	return nil
}

func (r *BatchRepo) FindByID(id uuid.UUID) (*model.ProductBatch, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	b, ok := r.s.batches[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	c := *b
	return &c, nil
}

func (r *BatchRepo) FindAll(branchID *uuid.UUID, variantID *uuid.UUID) ([]model.ProductBatch, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.ProductBatch
	for _, id := range r.s.batchIDs {
		b := r.s.batches[id]
		if branchID != nil && b.BranchID != *branchID {
			continue
		}
		if variantID != nil && b.VariantID != *variantID {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *BatchRepo) Delete(batch *model.ProductBatch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.batches[batch.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.s.batches, batch.ID)
	for i, id := range r.s.batchIDs {
		if id == batch.ID {
			r.s.batchIDs = append(r.s.batchIDs[:i], r.s.batchIDs[i+1:]...)
			break
		}
	}
	return nil
}

// --- catalog ---

type ProductRepo struct{ s *Store }

func (r *ProductRepo) Create(product *model.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	touch(&product.BaseModel)
	for i := range product.Variants {
		touch(&product.Variants[i].BaseModel)
		product.Variants[i].ProductID = product.ID
		v := product.Variants[i]
		r.s.variants[v.ID] = &v
		r.s.variantIDs = append(r.s.variantIDs, v.ID)
	}
	c := *product
	r.s.products[product.ID] = &c
	r.s.productIDs = append(r.s.productIDs, product.ID)
	return nil
}

func (r *ProductRepo) Save(product *model.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[product.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	product.UpdatedAt = time.Now()
	c := *product
	r.s.products[product.ID] = &c
	return nil
}

func (r *ProductRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	c := *p
	c.Variants = r.s.variantsOf(id)
	return &c, nil
}

func (r *ProductRepo) FindBySlug(slug string) (*model.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, id := range r.s.productIDs {
		p := r.s.products[id]
		if p.Slug == slug {
			c := *p
			c.Variants = r.s.variantsOf(id)
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *ProductRepo) FindAll(categoryID *uuid.UUID) ([]model.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.Product
	for i := len(r.s.productIDs) - 1; i >= 0; i-- {
		p := r.s.products[r.s.productIDs[i]]
		if categoryID != nil && (p.CategoryID == nil || *p.CategoryID != *categoryID) {
			continue
		}
		c := *p
		c.Variants = r.s.variantsOf(p.ID)
		out = append(out, c)
	}
	return out, nil
}

func (r *ProductRepo) Delete(id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.s.products, id)
	for i, pid := range r.s.productIDs {
		if pid == id {
			r.s.productIDs = append(r.s.productIDs[:i], r.s.productIDs[i+1:]...)
			break
		}
	}
	kept := r.s.variantIDs[:0]
	for _, vid := range r.s.variantIDs {
		if r.s.variants[vid].ProductID == id {
			delete(r.s.variants, vid)
			continue
		}
		kept = append(kept, vid)
	}
	r.s.variantIDs = kept
	return nil
}

func (s *Store) variantsOf(productID uuid.UUID) []model.ProductVariant {
	var out []model.ProductVariant
	for _, vid := range s.variantIDs {
		if v := s.variants[vid]; v.ProductID == productID {
			out = append(out, *v)
		}
	}
	return out
}

type VariantRepo struct{ s *Store }

func (r *VariantRepo) Create(variant *model.ProductVariant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	touch(&variant.BaseModel)
	c := *variant
	r.s.variants[variant.ID] = &c
	r.s.variantIDs = append(r.s.variantIDs, variant.ID)
	return nil
}

func (r *VariantRepo) Save(variant *model.ProductVariant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.variants[variant.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	variant.UpdatedAt = time.Now()
	c := *variant
	r.s.variants[variant.ID] = &c
	return nil
}

func (r *VariantRepo) FindByID(id uuid.UUID) (*model.ProductVariant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	v, ok := r.s.variants[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	c := *v
	if p, ok := r.s.products[v.ProductID]; ok {
		pc := *p
		c.Product = &pc
	}
	return &c, nil
}

func (r *VariantRepo) FindByIDs(ids []uuid.UUID) ([]model.ProductVariant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.ProductVariant
	for _, id := range ids {
		if v, ok := r.s.variants[id]; ok {
			c := *v
			if p, ok := r.s.products[v.ProductID]; ok {
				pc := *p
				c.Product = &pc
			}
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *VariantRepo) FindBySKU(sku string) (*model.ProductVariant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, id := range r.s.variantIDs {
		v := r.s.variants[id]
		if strings.EqualFold(v.SKU, sku) {
			c := *v
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *VariantRepo) FindByProduct(productID uuid.UUID) ([]model.ProductVariant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.variantsOf(productID), nil
}

func (r *VariantRepo) Delete(id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.variants[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.s.variants, id)
	for i, vid := range r.s.variantIDs {
		if vid == id {
			r.s.variantIDs = append(r.s.variantIDs[:i], r.s.variantIDs[i+1:]...)
			break
		}
	}
	return nil
}

type CustomerRepo struct{ s *Store }

func (r *CustomerRepo) Create(customer *model.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	touch(&customer.BaseModel)
	c := *customer
	r.s.customers[customer.ID] = &c
	return nil
}

func (r *CustomerRepo) Save(customer *model.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.customers[customer.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	customer.UpdatedAt = time.Now()
	c := *customer
	r.s.customers[customer.ID] = &c
	return nil
}

func (r *CustomerRepo) FindByID(id uuid.UUID) (*model.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *c
	return &out, nil
}

func (r *CustomerRepo) FindByPhone(phone string) (*model.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.customers {
		if c.Phone == phone {
			out := *c
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *CustomerRepo) FindAll(search string) ([]model.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.Customer
	for _, c := range r.s.customers {
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Name), strings.ToLower(search)) &&
			!strings.Contains(c.Phone, search) &&
			!strings.Contains(strings.ToLower(c.Email), strings.ToLower(search)) {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (r *CustomerRepo) Delete(id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.customers[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.s.customers, id)
	return nil
}

// CategoryRepo backs the catalog service tests.
type CategoryRepo struct{ s *Store }

func (r *CategoryRepo) Create(category *model.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	touch(&category.BaseModel)
	c := *category
	r.s.categories[category.ID] = &c
	return nil
}

func (r *CategoryRepo) Save(category *model.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[category.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	category.UpdatedAt = time.Now()
	c := *category
	r.s.categories[category.ID] = &c
	return nil
}

func (r *CategoryRepo) FindByID(id uuid.UUID) (*model.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *c
	return &out, nil
}

func (r *CategoryRepo) FindAll() ([]model.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.Category
	for _, c := range r.s.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (r *CategoryRepo) Delete(id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.s.categories, id)
	return nil
}
