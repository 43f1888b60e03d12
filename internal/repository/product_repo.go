package repository

import (
	"go-pos-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	Save(product *model.Product) error
	FindByID(id uuid.UUID) (*model.Product, error)
	FindBySlug(slug string) (*model.Product, error)
	FindAll(categoryID *uuid.UUID) ([]model.Product, error)
	Delete(id uuid.UUID) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) Save(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Category").Preload("Variants").First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindBySlug(slug string) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Category").Preload("Variants").First(&product, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindAll(categoryID *uuid.UUID) ([]model.Product, error) {
	var products []model.Product
	query := r.db.Preload("Category").Preload("Variants").Order("created_at DESC")
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	err := query.Find(&products).Error
	return products, err
}

// Delete soft-deletes the product and its variants in one transaction.
// There is no database-level cascade.
func (r *productRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.ProductVariant{}, "product_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Product{}, "id = ?", id).Error
	})
}
