package repository

import (
	"go-pos-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VariantRepository interface {
	Create(variant *model.ProductVariant) error
	Save(variant *model.ProductVariant) error
	FindByID(id uuid.UUID) (*model.ProductVariant, error)
	FindByIDs(ids []uuid.UUID) ([]model.ProductVariant, error)
	FindBySKU(sku string) (*model.ProductVariant, error)
	FindByProduct(productID uuid.UUID) ([]model.ProductVariant, error)
	Delete(id uuid.UUID) error
}

type variantRepo struct {
	db *gorm.DB
}

func NewVariantRepo(db *gorm.DB) VariantRepository {
	return &variantRepo{db}
}

func (r *variantRepo) Create(variant *model.ProductVariant) error {
	return r.db.Create(variant).Error
}

func (r *variantRepo) Save(variant *model.ProductVariant) error {
	return r.db.Save(variant).Error
}

func (r *variantRepo) FindByID(id uuid.UUID) (*model.ProductVariant, error) {
	var variant model.ProductVariant
	err := r.db.Preload("Product").First(&variant, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &variant, nil
}

func (r *variantRepo) FindByIDs(ids []uuid.UUID) ([]model.ProductVariant, error) {
	var variants []model.ProductVariant
	err := r.db.Preload("Product").Where("id IN ?", ids).Find(&variants).Error
	return variants, err
}

func (r *variantRepo) FindBySKU(sku string) (*model.ProductVariant, error) {
	var variant model.ProductVariant
	err := r.db.First(&variant, "sku = ?", sku).Error
	if err != nil {
		return nil, err
	}
	return &variant, nil
}

func (r *variantRepo) FindByProduct(productID uuid.UUID) ([]model.ProductVariant, error) {
	var variants []model.ProductVariant
	err := r.db.Where("product_id = ?", productID).Find(&variants).Error
	return variants, err
}

func (r *variantRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.ProductVariant{}, "id = ?", id).Error
}
