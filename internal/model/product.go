package model

import (
	"github.com/google/uuid"
)

type Category struct {
	BaseModel
	Name string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
}

func (Category) TableName() string {
	return "categories"
}

// Product is a catalog entry. Prices are stored in minor currency units.
type Product struct {
	BaseModel
	Name        string           `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Slug        string           `gorm:"type:varchar(255);index" json:"slug"`
	Price       int64            `gorm:"default:0" json:"price"`
	CategoryID  *uuid.UUID       `gorm:"type:uuid;index" json:"category_id"`
	Category    *Category        `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Description string           `gorm:"type:text" json:"description"`
	Thumbnail   string           `gorm:"type:varchar(512)" json:"thumbnail"`
	Variants    []ProductVariant `gorm:"foreignKey:ProductID" json:"variants,omitempty"`
}

func (Product) TableName() string {
	return "products"
}

// ProductVariant is a sellable variation of a product (size, color, ...).
// Variant price overrides the product price when set.
type ProductVariant struct {
	BaseModel
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	SKU       string    `gorm:"type:varchar(50);index" json:"sku"`
	Weight    int       `gorm:"default:0" json:"weight"`
	Color     string    `gorm:"type:varchar(50)" json:"color"`
	Price     int64     `gorm:"default:0" json:"price"`
	Thumbnail string    `gorm:"type:varchar(512)" json:"thumbnail"`
}

func (ProductVariant) TableName() string {
	return "product_variants"
}
