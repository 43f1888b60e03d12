package repository

import (
	"go-pos-backend/internal/model"

	"gorm.io/gorm"
)

type PermissionRepository interface {
	FindByCode(code string) (*model.Permission, error)
	FindByCodes(codes []string) ([]model.Permission, error)
	FindAll() ([]model.Permission, error)
	Create(permission *model.Permission) error
	SeedDefaults() error
}

type permissionRepo struct {
	db *gorm.DB
}

func NewPermissionRepo(db *gorm.DB) PermissionRepository {
	return &permissionRepo{db}
}

func (r *permissionRepo) FindByCode(code string) (*model.Permission, error) {
	var permission model.Permission
	if err := r.db.Where("code = ?", code).First(&permission).Error; err != nil {
		return nil, err
	}
	return &permission, nil
}

func (r *permissionRepo) FindByCodes(codes []string) ([]model.Permission, error) {
	var permissions []model.Permission
	if err := r.db.Where("code IN ?", codes).Find(&permissions).Error; err != nil {
		return nil, err
	}
	return permissions, nil
}

func (r *permissionRepo) FindAll() ([]model.Permission, error) {
	var permissions []model.Permission
	if err := r.db.Find(&permissions).Error; err != nil {
		return nil, err
	}
	return permissions, nil
}

func (r *permissionRepo) Create(permission *model.Permission) error {
	return r.db.Create(permission).Error
}

// SeedDefaults creates default permissions if they don't exist
func (r *permissionRepo) SeedDefaults() error {
	for _, p := range model.DefaultPermissions {
		var existing model.Permission
		if err := r.db.Where("code = ?", p.Code).First(&existing).Error; err == gorm.ErrRecordNotFound {
			if err := r.db.Create(&p).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
