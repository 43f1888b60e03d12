package service

import (
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"

	"github.com/google/uuid"
)

type CustomerService interface {
	CreateCustomer(req *model.Customer) error
	UpdateCustomer(id uuid.UUID, req *model.Customer) (*model.Customer, error)
	DeleteCustomer(id uuid.UUID) error
	GetCustomer(id uuid.UUID) (*model.Customer, error)
	GetCustomers(search string) ([]model.Customer, error)
	AddLoyaltyPoints(id uuid.UUID, points int) (*model.Customer, error)
}

type customerService struct {
	customers repository.CustomerRepository
}

func NewCustomerService(customers repository.CustomerRepository) CustomerService {
	return &customerService{customers: customers}
}

func (s *customerService) CreateCustomer(req *model.Customer) error {
	return s.customers.Create(req)
}

func (s *customerService) UpdateCustomer(id uuid.UUID, req *model.Customer) (*model.Customer, error) {
	customer, err := s.customers.FindByID(id)
	if err != nil {
		return nil, ErrCustomerNotFound
	}
	if req.Name != "" {
		customer.Name = req.Name
	}
	if req.Phone != "" {
		customer.Phone = req.Phone
	}
	if req.Email != "" {
		customer.Email = req.Email
	}
	if req.Address != "" {
		customer.Address = req.Address
	}
	if req.City != "" {
		customer.City = req.City
	}
	if req.Country != "" {
		customer.Country = req.Country
	}
	if err := s.customers.Save(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) DeleteCustomer(id uuid.UUID) error {
	if _, err := s.customers.FindByID(id); err != nil {
		return ErrCustomerNotFound
	}
	return s.customers.Delete(id)
}

func (s *customerService) GetCustomer(id uuid.UUID) (*model.Customer, error) {
	customer, err := s.customers.FindByID(id)
	if err != nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

func (s *customerService) GetCustomers(search string) ([]model.Customer, error) {
	return s.customers.FindAll(search)
}

func (s *customerService) AddLoyaltyPoints(id uuid.UUID, points int) (*model.Customer, error) {
	customer, err := s.customers.FindByID(id)
	if err != nil {
		return nil, ErrCustomerNotFound
	}
	customer.LoyaltyPoints += points
	if customer.LoyaltyPoints < 0 {
		customer.LoyaltyPoints = 0
	}
	if err := s.customers.Save(customer); err != nil {
		return nil, err
	}
	return customer, nil
}
