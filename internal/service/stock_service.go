package service

import (
	"time"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"

	"github.com/google/uuid"
)

type StockService interface {
	CreateStock(req *CreateStockRequest) (*model.ProductStock, error)
	UpdateStock(id uuid.UUID, req *UpdateStockRequest) (*model.ProductStock, error)
	DeleteStock(id uuid.UUID) error
	GetStock(id uuid.UUID) (*model.ProductStock, error)
	GetStocks(branchID *uuid.UUID) ([]model.ProductStock, error)

	CreateMovement(req *CreateMovementRequest) (*model.StockMovement, error)
	GetMovement(id uuid.UUID) (*model.StockMovement, error)
	GetMovements(branchID *uuid.UUID, refType model.ReferenceType) ([]model.StockMovement, error)

	CreateBatch(req *CreateBatchRequest) (*model.ProductBatch, error)
	UpdateBatch(id uuid.UUID, req *UpdateBatchRequest) (*model.ProductBatch, error)
	DeleteBatch(id uuid.UUID) error
	GetBatch(id uuid.UUID) (*model.ProductBatch, error)
	GetBatches(branchID, variantID *uuid.UUID) ([]model.ProductBatch, error)
}

type CreateStockRequest struct {
	ProductID *uuid.UUID `json:"product_id"`
	VariantID *uuid.UUID `json:"variant_id"`
	BranchID  uuid.UUID  `json:"branch_id" validate:"uuid_required"`
	Stock     int        `json:"stock" validate:"gte=0"`
	MinStock  int        `json:"min_stock" validate:"gte=0"`
}

type UpdateStockRequest struct {
	Stock    int `json:"stock" validate:"gte=0"`
	MinStock int `json:"min_stock" validate:"gte=0"`
}

// CreateMovementRequest records a manual adjustment as a signed delta against
// an existing balance row. Sale and purchase entries come from their own flows.
type CreateMovementRequest struct {
	ProductID *uuid.UUID `json:"product_id"`
	VariantID *uuid.UUID `json:"variant_id"`
	BranchID  uuid.UUID  `json:"branch_id" validate:"uuid_required"`
	Qty       int        `json:"qty"`
}

type CreateBatchRequest struct {
	VariantID uuid.UUID `json:"variant_id" validate:"uuid_required"`
	BranchID  uuid.UUID `json:"branch_id" validate:"uuid_required"`
	BatchCode string    `json:"batch_code" validate:"required"`
	ExpDate   time.Time `json:"exp_date"`
	Qty       int       `json:"qty"`
}

type UpdateBatchRequest struct {
	BatchCode string    `json:"batch_code"`
	ExpDate   time.Time `json:"exp_date"`
}

type stockService struct {
	uow      repository.UnitOfWork
	stocks   repository.ProductStockRepository
	moves    repository.StockMovementRepository
	batches  repository.ProductBatchRepository
	products repository.ProductRepository
	variants repository.VariantRepository
}

func NewStockService(
	uow repository.UnitOfWork,
	stocks repository.ProductStockRepository,
	moves repository.StockMovementRepository,
	batches repository.ProductBatchRepository,
	products repository.ProductRepository,
	variants repository.VariantRepository,
) StockService {
	return &stockService{
		uow:      uow,
		stocks:   stocks,
		moves:    moves,
		batches:  batches,
		products: products,
		variants: variants,
	}
}

// CreateStock opens a balance row for a product or variant at a branch.
// One row per (ref, branch); a second create for the same pair is refused.
// A non-zero opening balance is recorded in the ledger as an adjustment.
func (s *stockService) CreateStock(req *CreateStockRequest) (*model.ProductStock, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	ref, err := model.NewItemRef(req.ProductID, req.VariantID)
	if err != nil {
		return nil, ErrItemRefRequired
	}
	if ref.IsVariant() {
		if _, err := s.variants.FindByID(ref.ID); err != nil {
			return nil, ErrVariantNotFound
		}
	} else {
		if _, err := s.products.FindByID(ref.ID); err != nil {
			return nil, ErrProductNotFound
		}
	}

	branchID := req.BranchID
	if existing, err := s.stocks.FindByRef(ref, &branchID); err == nil && existing != nil {
		return nil, ErrStockRowExists
	}

	stock := &model.ProductStock{
		ProductID: req.ProductID,
		VariantID: req.VariantID,
		BranchID:  req.BranchID,
		Stock:     req.Stock,
		MinStock:  req.MinStock,
	}
	err = s.uow.Run(func(repos repository.RepoSet) error {
		if err := repos.Stocks.Create(stock); err != nil {
			return err
		}
		if stock.Stock == 0 {
			return nil
		}
		return repos.Movements.Create(&model.StockMovement{
			ProductID:     stock.ProductID,
			VariantID:     stock.VariantID,
			BranchID:      stock.BranchID,
			ReferenceType: model.RefTypeAdjust,
			Qty:           stock.Stock,
			ReferenceID:   stock.ID,
		})
	})
	if err != nil {
		return nil, err
	}
	return stock, nil
}

// UpdateStock sets the balance and threshold. The signed difference between
// the old and new balance goes into the ledger, so manual corrections stay
// auditable.
func (s *stockService) UpdateStock(id uuid.UUID, req *UpdateStockRequest) (*model.ProductStock, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	stock, err := s.stocks.FindByID(id)
	if err != nil {
		return nil, ErrProductStockNotFound
	}

	delta := req.Stock - stock.Stock
	stock.Stock = req.Stock
	stock.MinStock = req.MinStock

	err = s.uow.Run(func(repos repository.RepoSet) error {
		if err := repos.Stocks.Save(stock); err != nil {
			return err
		}
		if delta == 0 {
			return nil
		}
		return repos.Movements.Create(&model.StockMovement{
			ProductID:     stock.ProductID,
			VariantID:     stock.VariantID,
			BranchID:      stock.BranchID,
			ReferenceType: model.RefTypeAdjust,
			Qty:           delta,
			ReferenceID:   stock.ID,
		})
	})
	if err != nil {
		return nil, err
	}
	return stock, nil
}

func (s *stockService) DeleteStock(id uuid.UUID) error {
	stock, err := s.stocks.FindByID(id)
	if err != nil {
		return ErrProductStockNotFound
	}
	return s.stocks.Delete(stock)
}

func (s *stockService) GetStock(id uuid.UUID) (*model.ProductStock, error) {
	stock, err := s.stocks.FindByID(id)
	if err != nil {
		return nil, ErrProductStockNotFound
	}
	return stock, nil
}

func (s *stockService) GetStocks(branchID *uuid.UUID) ([]model.ProductStock, error) {
	return s.stocks.FindAll(branchID)
}

// CreateMovement applies a manual delta to a balance row and appends the
// matching adjust entry in one transaction. The row must already exist and the
// delta may not take it negative.
func (s *stockService) CreateMovement(req *CreateMovementRequest) (*model.StockMovement, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	ref, err := model.NewItemRef(req.ProductID, req.VariantID)
	if err != nil {
		return nil, ErrItemRefRequired
	}
	if req.Qty == 0 {
		return nil, ErrInvalidQuantity
	}

	var movement *model.StockMovement
	err = s.uow.Run(func(repos repository.RepoSet) error {
		branchID := req.BranchID
		stock, err := repos.Stocks.FindByRefForUpdate(ref, &branchID)
		if err != nil {
			if ref.IsVariant() {
				return ErrVariantStockNotFound
			}
			return ErrProductStockNotFound
		}
		if stock.Stock+req.Qty < 0 {
			if ref.IsVariant() {
				return ErrVariantStockInsufficient
			}
			return ErrProductStockInsufficient
		}
		stock.Stock += req.Qty
		if err := repos.Stocks.Save(stock); err != nil {
			return err
		}
		movement = &model.StockMovement{
			ProductID:     stock.ProductID,
			VariantID:     stock.VariantID,
			BranchID:      stock.BranchID,
			ReferenceType: model.RefTypeAdjust,
			Qty:           req.Qty,
			ReferenceID:   stock.ID,
		}
		return repos.Movements.Create(movement)
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

func (s *stockService) GetMovement(id uuid.UUID) (*model.StockMovement, error) {
	movement, err := s.moves.FindByID(id)
	if err != nil {
		return nil, ErrMovementNotFound
	}
	return movement, nil
}

func (s *stockService) GetMovements(branchID *uuid.UUID, refType model.ReferenceType) ([]model.StockMovement, error) {
	return s.moves.FindAll(branchID, refType)
}

// CreateBatch registers a received intake. The variant balance at the branch
// is increased (the row is opened if it does not exist yet) and a purchase
// movement referencing the batch is appended, all in one transaction.
func (s *stockService) CreateBatch(req *CreateBatchRequest) (*model.ProductBatch, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	variant, err := s.variants.FindByID(req.VariantID)
	if err != nil {
		return nil, ErrVariantNotFound
	}
	if req.Qty <= 0 {
		return nil, ErrInvalidQuantity
	}

	batch := &model.ProductBatch{
		VariantID: req.VariantID,
		BranchID:  req.BranchID,
		BatchCode: req.BatchCode,
		ExpDate:   req.ExpDate,
		Qty:       req.Qty,
	}
	err = s.uow.Run(func(repos repository.RepoSet) error {
		if err := repos.Batches.Create(batch); err != nil {
			return err
		}

		branchID := req.BranchID
		variantID := req.VariantID
		stock, err := repos.Stocks.FindByRefForUpdate(model.VariantRef(variantID), &branchID)
		if err != nil {
			productID := variant.ProductID
			stock = &model.ProductStock{
				ProductID: &productID,
				VariantID: &variantID,
				BranchID:  branchID,
			}
			if err := repos.Stocks.Create(stock); err != nil {
				return err
			}
		}
		stock.Stock += req.Qty
		if err := repos.Stocks.Save(stock); err != nil {
			return err
		}

		return repos.Movements.Create(&model.StockMovement{
			ProductID:     stock.ProductID,
			VariantID:     stock.VariantID,
			BranchID:      branchID,
			ReferenceType: model.RefTypePurchase,
			Qty:           req.Qty,
			ReferenceID:   batch.ID,
		})
	})
	if err != nil {
		return nil, err
	}
	return batch, nil
}

// UpdateBatch edits descriptive fields only. Quantity corrections go through
// stock adjustments so the ledger stays truthful.
func (s *stockService) UpdateBatch(id uuid.UUID, req *UpdateBatchRequest) (*model.ProductBatch, error) {
	batch, err := s.batches.FindByID(id)
	if err != nil {
		return nil, ErrBatchNotFound
	}
	if req.BatchCode != "" {
		batch.BatchCode = req.BatchCode
	}
	if !req.ExpDate.IsZero() {
		batch.ExpDate = req.ExpDate
	}
	if err := s.batches.Save(batch); err != nil {
		return nil, err
	}
	return batch, nil
}

func (s *stockService) DeleteBatch(id uuid.UUID) error {
	batch, err := s.batches.FindByID(id)
	if err != nil {
		return ErrBatchNotFound
	}
	return s.batches.Delete(batch)
}

func (s *stockService) GetBatch(id uuid.UUID) (*model.ProductBatch, error) {
	batch, err := s.batches.FindByID(id)
	if err != nil {
		return nil, ErrBatchNotFound
	}
	return batch, nil
}

func (s *stockService) GetBatches(branchID, variantID *uuid.UUID) ([]model.ProductBatch, error) {
	return s.batches.FindAll(branchID, variantID)
}
