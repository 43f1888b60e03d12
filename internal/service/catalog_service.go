package service

import (
	"strings"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"

	"github.com/google/uuid"
)

type CatalogService interface {
	CreateCategory(req *model.Category) error
	UpdateCategory(id uuid.UUID, name string) (*model.Category, error)
	DeleteCategory(id uuid.UUID) error
	GetCategory(id uuid.UUID) (*model.Category, error)
	GetCategories() ([]model.Category, error)

	CreateProduct(req *CreateProductRequest) (*model.Product, error)
	UpdateProduct(id uuid.UUID, req *UpdateProductRequest) (*model.Product, error)
	DeleteProduct(id uuid.UUID) error
	GetProduct(id uuid.UUID) (*model.Product, error)
	GetProducts(categoryID *uuid.UUID) ([]model.Product, error)

	CreateVariant(productID uuid.UUID, req *VariantRequest) (*model.ProductVariant, error)
	UpdateVariant(id uuid.UUID, req *VariantRequest) (*model.ProductVariant, error)
	DeleteVariant(id uuid.UUID) error
	GetVariant(id uuid.UUID) (*model.ProductVariant, error)
}

type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required"`
	Price       int64            `json:"price" validate:"gte=0"`
	CategoryID  *uuid.UUID       `json:"category_id"`
	Description string           `json:"description"`
	Thumbnail   string           `json:"thumbnail"`
	Variants    []VariantRequest `json:"variants" validate:"dive"`
}

type UpdateProductRequest struct {
	Name        string     `json:"name"`
	Price       *int64     `json:"price"`
	CategoryID  *uuid.UUID `json:"category_id"`
	Description string     `json:"description"`
	Thumbnail   string     `json:"thumbnail"`
}

type VariantRequest struct {
	Name      string `json:"name" validate:"required"`
	SKU       string `json:"sku"`
	Weight    int    `json:"weight"`
	Color     string `json:"color"`
	Price     int64  `json:"price" validate:"gte=0"`
	Thumbnail string `json:"thumbnail"`
}

type catalogService struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	variants   repository.VariantRepository
}

func NewCatalogService(
	categories repository.CategoryRepository,
	products repository.ProductRepository,
	variants repository.VariantRepository,
) CatalogService {
	return &catalogService{
		categories: categories,
		products:   products,
		variants:   variants,
	}
}

func (s *catalogService) CreateCategory(req *model.Category) error {
	if err := validateRequest(req); err != nil {
		return err
	}
	return s.categories.Create(req)
}

func (s *catalogService) UpdateCategory(id uuid.UUID, name string) (*model.Category, error) {
	category, err := s.categories.FindByID(id)
	if err != nil {
		return nil, ErrCategoryNotFound
	}
	category.Name = name
	if err := s.categories.Save(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *catalogService) DeleteCategory(id uuid.UUID) error {
	if _, err := s.categories.FindByID(id); err != nil {
		return ErrCategoryNotFound
	}
	return s.categories.Delete(id)
}

func (s *catalogService) GetCategory(id uuid.UUID) (*model.Category, error) {
	category, err := s.categories.FindByID(id)
	if err != nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

func (s *catalogService) GetCategories() ([]model.Category, error) {
	return s.categories.FindAll()
}

func (s *catalogService) CreateProduct(req *CreateProductRequest) (*model.Product, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if req.CategoryID != nil {
		if _, err := s.categories.FindByID(*req.CategoryID); err != nil {
			return nil, ErrCategoryNotFound
		}
	}
	product := &model.Product{
		Name:        req.Name,
		Slug:        slugify(req.Name),
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Thumbnail:   req.Thumbnail,
	}
	for _, v := range req.Variants {
		product.Variants = append(product.Variants, model.ProductVariant{
			Name:      v.Name,
			SKU:       v.SKU,
			Weight:    v.Weight,
			Color:     v.Color,
			Price:     v.Price,
			Thumbnail: v.Thumbnail,
		})
	}
	if err := s.products.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *catalogService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest) (*model.Product, error) {
	product, err := s.products.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}
	if req.Name != "" {
		product.Name = req.Name
		product.Slug = slugify(req.Name)
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.CategoryID != nil {
		if _, err := s.categories.FindByID(*req.CategoryID); err != nil {
			return nil, ErrCategoryNotFound
		}
		product.CategoryID = req.CategoryID
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.Thumbnail != "" {
		product.Thumbnail = req.Thumbnail
	}
	if err := s.products.Save(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes the product together with its variants.
func (s *catalogService) DeleteProduct(id uuid.UUID) error {
	if _, err := s.products.FindByID(id); err != nil {
		return ErrProductNotFound
	}
	return s.products.Delete(id)
}

func (s *catalogService) GetProduct(id uuid.UUID) (*model.Product, error) {
	product, err := s.products.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *catalogService) GetProducts(categoryID *uuid.UUID) ([]model.Product, error) {
	return s.products.FindAll(categoryID)
}

func (s *catalogService) CreateVariant(productID uuid.UUID, req *VariantRequest) (*model.ProductVariant, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if _, err := s.products.FindByID(productID); err != nil {
		return nil, ErrProductNotFound
	}
	variant := &model.ProductVariant{
		ProductID: productID,
		Name:      req.Name,
		SKU:       req.SKU,
		Weight:    req.Weight,
		Color:     req.Color,
		Price:     req.Price,
		Thumbnail: req.Thumbnail,
	}
	if err := s.variants.Create(variant); err != nil {
		return nil, err
	}
	return variant, nil
}

func (s *catalogService) UpdateVariant(id uuid.UUID, req *VariantRequest) (*model.ProductVariant, error) {
	variant, err := s.variants.FindByID(id)
	if err != nil {
		return nil, ErrVariantNotFound
	}
	if req.Name != "" {
		variant.Name = req.Name
	}
	if req.SKU != "" {
		variant.SKU = req.SKU
	}
	if req.Weight != 0 {
		variant.Weight = req.Weight
	}
	if req.Color != "" {
		variant.Color = req.Color
	}
	if req.Price != 0 {
		variant.Price = req.Price
	}
	if req.Thumbnail != "" {
		variant.Thumbnail = req.Thumbnail
	}
	if err := s.variants.Save(variant); err != nil {
		return nil, err
	}
	return variant, nil
}

func (s *catalogService) DeleteVariant(id uuid.UUID) error {
	if _, err := s.variants.FindByID(id); err != nil {
		return ErrVariantNotFound
	}
	return s.variants.Delete(id)
}

func (s *catalogService) GetVariant(id uuid.UUID) (*model.ProductVariant, error) {
	variant, err := s.variants.FindByID(id)
	if err != nil {
		return nil, ErrVariantNotFound
	}
	return variant, nil
}

// slugify lowercases the name and replaces separator runs with single
// hyphens. Collisions are tolerated; the slug is a convenience, not a key.
func slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
