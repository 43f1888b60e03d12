package model

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	BaseModel
	Name          string `gorm:"type:varchar(255)" json:"name"`
	Phone         string `gorm:"type:varchar(20)" json:"phone"`
	Email         string `gorm:"type:varchar(255)" json:"email"`
	Address       string `gorm:"type:text;not null" json:"address" validate:"required"`
	City          string `gorm:"type:varchar(100);not null" json:"city" validate:"required"`
	Country       string `gorm:"type:varchar(100);not null" json:"country" validate:"required"`
	LoyaltyPoints int    `gorm:"default:0" json:"loyalty_points"`
}

func (Customer) TableName() string {
	return "customers"
}

type CustomerResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	City          string    `json:"city"`
	Country       string    `json:"country"`
	LoyaltyPoints int       `json:"loyalty_points"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (c *Customer) ToResponse() CustomerResponse {
	return CustomerResponse{
		ID:            c.ID,
		Name:          c.Name,
		Phone:         c.Phone,
		Email:         c.Email,
		Address:       c.Address,
		City:          c.City,
		Country:       c.Country,
		LoyaltyPoints: c.LoyaltyPoints,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
