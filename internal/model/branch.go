package model

import (
	"time"

	"github.com/google/uuid"
)

// Branch is a physical store location. Orders, stock rows and movements are
// scoped to a branch.
type Branch struct {
	BaseModel
	Name     string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Code     string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code" validate:"required"`
	Address  string `gorm:"type:text" json:"address"`
	Phone    string `gorm:"type:varchar(20)" json:"phone"`
	Email    string `gorm:"type:varchar(255)" json:"email"`
	City     string `gorm:"type:varchar(100)" json:"city"`
	Province string `gorm:"type:varchar(100)" json:"province"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
}

func (Branch) TableName() string {
	return "branches"
}

// UserBranch grants a user access to a branch. Rows are removed explicitly
// when a branch is deleted; there is no declarative cascade.
type UserBranch struct {
	BaseModel
	UserID   uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User     *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	BranchID uuid.UUID `gorm:"type:uuid;not null;index" json:"branch_id"`
	Branch   *Branch   `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
}

func (UserBranch) TableName() string {
	return "user_branches"
}

// BranchResponse for API responses
type BranchResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	City      string    `json:"city"`
	Province  string    `json:"province"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Branch) ToResponse() BranchResponse {
	return BranchResponse{
		ID:        b.ID,
		Name:      b.Name,
		Code:      b.Code,
		Address:   b.Address,
		Phone:     b.Phone,
		Email:     b.Email,
		City:      b.City,
		Province:  b.Province,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
