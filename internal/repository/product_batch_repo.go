package repository

import (
	"go-pos-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductBatchRepository interface {
	Create(batch *model.ProductBatch) error
	Save(batch *model.ProductBatch) error
	FindByID(id uuid.UUID) (*model.ProductBatch, error)
	FindAll(branchID *uuid.UUID, variantID *uuid.UUID) ([]model.ProductBatch, error)
	Delete(batch *model.ProductBatch) error
}

type productBatchRepo struct {
	db *gorm.DB
}

func NewProductBatchRepo(db *gorm.DB) ProductBatchRepository {
	return &productBatchRepo{db}
}

func (r *productBatchRepo) Create(batch *model.ProductBatch) error {
	return r.db.Create(batch).Error
}

func (r *productBatchRepo) Save(batch *model.ProductBatch) error {
	return r.db.Save(batch).Error
}

func (r *productBatchRepo) FindByID(id uuid.UUID) (*model.ProductBatch, error) {
	var batch model.ProductBatch
	err := r.db.Preload("Variant").Preload("Branch").First(&batch, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &batch, nil
}

func (r *productBatchRepo) FindAll(branchID *uuid.UUID, variantID *uuid.UUID) ([]model.ProductBatch, error) {
	var batches []model.ProductBatch
	query := r.db.Preload("Variant").Order("exp_date ASC")
	if branchID != nil {
		query = query.Where("branch_id = ?", *branchID)
	}
	if variantID != nil {
		query = query.Where("variant_id = ?", *variantID)
	}
	err := query.Find(&batches).Error
	return batches, err
}

func (r *productBatchRepo) Delete(batch *model.ProductBatch) error {
	return r.db.Delete(batch).Error
}
