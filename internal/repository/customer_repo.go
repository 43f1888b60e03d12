package repository

import (
	"go-pos-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(customer *model.Customer) error
	Save(customer *model.Customer) error
	FindByID(id uuid.UUID) (*model.Customer, error)
	FindByPhone(phone string) (*model.Customer, error)
	FindAll(search string) ([]model.Customer, error)
	Delete(id uuid.UUID) error
}

type customerRepo struct {
	db *gorm.DB
}

func NewCustomerRepo(db *gorm.DB) CustomerRepository {
	return &customerRepo{db}
}

func (r *customerRepo) Create(customer *model.Customer) error {
	return r.db.Create(customer).Error
}

func (r *customerRepo) Save(customer *model.Customer) error {
	return r.db.Save(customer).Error
}

func (r *customerRepo) FindByID(id uuid.UUID) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.First(&customer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepo) FindByPhone(phone string) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.First(&customer, "phone = ?", phone).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepo) FindAll(search string) ([]model.Customer, error) {
	var customers []model.Customer
	query := r.db.Order("created_at DESC")
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR phone ILIKE ? OR email ILIKE ?", pattern, pattern, pattern)
	}
	err := query.Find(&customers).Error
	return customers, err
}

func (r *customerRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Customer{}, "id = ?", id).Error
}
