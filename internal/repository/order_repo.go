package repository

import (
	"go-pos-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository interface {
	Create(order *model.Order) error
	Save(order *model.Order) error
	FindByID(id uuid.UUID) (*model.Order, error)
	FindAll(branchID *uuid.UUID, status string) ([]model.Order, error)
	FindByIDs(ids []uuid.UUID) ([]model.Order, error)
	SaveItem(item *model.OrderItem) error
	DeleteItem(item *model.OrderItem) error
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db}
}

func (r *orderRepo) Create(order *model.Order) error {
	return r.db.Create(order).Error
}

// Save persists the order row only; items are saved explicitly through
// SaveItem so a merge never upserts lines it did not touch.
func (r *orderRepo) Save(order *model.Order) error {
	return r.db.Omit(clause.Associations).Save(order).Error
}

func (r *orderRepo) FindByID(id uuid.UUID) (*model.Order, error) {
	var order model.Order
	err := r.db.
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Variant").
		Preload("Branch").
		Preload("User").
		Preload("Customer").
		First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) FindAll(branchID *uuid.UUID, status string) ([]model.Order, error) {
	var orders []model.Order
	query := r.db.
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Variant").
		Preload("Customer").
		Order("created_at DESC")
	if branchID != nil {
		query = query.Where("branch_id = ?", *branchID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&orders).Error
	return orders, err
}

func (r *orderRepo) FindByIDs(ids []uuid.UUID) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Variant").
		Where("id IN ?", ids).
		Find(&orders).Error
	return orders, err
}

func (r *orderRepo) SaveItem(item *model.OrderItem) error {
	return r.db.Omit(clause.Associations).Save(item).Error
}

func (r *orderRepo) DeleteItem(item *model.OrderItem) error {
	return r.db.Delete(item).Error
}
