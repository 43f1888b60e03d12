package repository

import (
	"go-pos-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StockMovementRepository interface {
	Create(movement *model.StockMovement) error
	FindByID(id uuid.UUID) (*model.StockMovement, error)
	FindAll(branchID *uuid.UUID, refType model.ReferenceType) ([]model.StockMovement, error)
	FindByReference(referenceID uuid.UUID) ([]model.StockMovement, error)
}

type stockMovementRepo struct {
	db *gorm.DB
}

func NewStockMovementRepo(db *gorm.DB) StockMovementRepository {
	return &stockMovementRepo{db}
}

func (r *stockMovementRepo) Create(movement *model.StockMovement) error {
	return r.db.Create(movement).Error
}

func (r *stockMovementRepo) FindByID(id uuid.UUID) (*model.StockMovement, error) {
	var movement model.StockMovement
	err := r.db.Preload("Product").Preload("Variant").Preload("Branch").First(&movement, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &movement, nil
}

func (r *stockMovementRepo) FindAll(branchID *uuid.UUID, refType model.ReferenceType) ([]model.StockMovement, error) {
	var movements []model.StockMovement
	query := r.db.Preload("Product").Preload("Variant").Order("created_at DESC")
	if branchID != nil {
		query = query.Where("branch_id = ?", *branchID)
	}
	if refType != "" {
		query = query.Where("reference_type = ?", refType)
	}
	err := query.Find(&movements).Error
	return movements, err
}

func (r *stockMovementRepo) FindByReference(referenceID uuid.UUID) ([]model.StockMovement, error) {
	var movements []model.StockMovement
	err := r.db.Where("reference_id = ?", referenceID).Order("created_at ASC").Find(&movements).Error
	return movements, err
}
