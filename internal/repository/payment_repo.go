package repository

import (
	"time"

	"go-pos-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(payment *model.Payment) error
	Save(payment *model.Payment) error
	FindByID(id uuid.UUID) (*model.Payment, error)
	FindAll(orderID *uuid.UUID) ([]model.Payment, error)
	FindSuccessBetween(startDate, endDate time.Time) ([]model.Payment, error)
}

type paymentRepo struct {
	db *gorm.DB
}

func NewPaymentRepo(db *gorm.DB) PaymentRepository {
	return &paymentRepo{db}
}

func (r *paymentRepo) Create(payment *model.Payment) error {
	return r.db.Create(payment).Error
}

func (r *paymentRepo) Save(payment *model.Payment) error {
	return r.db.Save(payment).Error
}

func (r *paymentRepo) FindByID(id uuid.UUID) (*model.Payment, error) {
	var payment model.Payment
	if err := r.db.First(&payment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepo) FindAll(orderID *uuid.UUID) ([]model.Payment, error) {
	var payments []model.Payment
	query := r.db.Order("created_at DESC")
	if orderID != nil {
		query = query.Where("order_id = ?", *orderID)
	}
	err := query.Find(&payments).Error
	return payments, err
}

func (r *paymentRepo) FindSuccessBetween(startDate, endDate time.Time) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.db.
		Where("status = ? AND paid_at BETWEEN ? AND ?", model.PaymentSuccess, startDate, endDate).
		Order("paid_at ASC").
		Find(&payments).Error
	return payments, err
}
