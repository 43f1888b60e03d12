package repository

import (
	"gorm.io/gorm"
)

// RepoSet bundles the repositories the settlement and order flows mutate
// together. Every repo in a set is bound to the same transaction handle.
type RepoSet struct {
	Orders    OrderRepository
	Payments  PaymentRepository
	Stocks    ProductStockRepository
	Movements StockMovementRepository
	Batches   ProductBatchRepository
}

// UnitOfWork runs a function against a RepoSet with all-or-nothing
// semantics: the function returning an error rolls every write back.
type UnitOfWork interface {
	Run(fn func(repos RepoSet) error) error
}

type gormUnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &gormUnitOfWork{db}
}

func (u *gormUnitOfWork) Run(fn func(repos RepoSet) error) error {
	return u.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepoSet(tx))
	})
}

// NewRepoSet binds a fresh set of repositories to the given handle, which
// may be a transaction.
func NewRepoSet(db *gorm.DB) RepoSet {
	return RepoSet{
		Orders:    NewOrderRepo(db),
		Payments:  NewPaymentRepo(db),
		Stocks:    NewProductStockRepo(db),
		Movements: NewStockMovementRepo(db),
		Batches:   NewProductBatchRepo(db),
	}
}
