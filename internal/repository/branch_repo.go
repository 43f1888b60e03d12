package repository

import (
	"go-pos-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BranchRepository interface {
	Create(branch *model.Branch) error
	Save(branch *model.Branch) error
	FindByID(id uuid.UUID) (*model.Branch, error)
	FindByCode(code string) (*model.Branch, error)
	FindAll() ([]model.Branch, error)
	Delete(id uuid.UUID) error
	AssignUser(userID, branchID uuid.UUID) error
	UnassignUser(userID, branchID uuid.UUID) error
	FindBranchesByUser(userID uuid.UUID) ([]model.Branch, error)
}

type branchRepo struct {
	db *gorm.DB
}

func NewBranchRepo(db *gorm.DB) BranchRepository {
	return &branchRepo{db}
}

func (r *branchRepo) Create(branch *model.Branch) error {
	return r.db.Create(branch).Error
}

func (r *branchRepo) Save(branch *model.Branch) error {
	return r.db.Save(branch).Error
}

func (r *branchRepo) FindByID(id uuid.UUID) (*model.Branch, error) {
	var branch model.Branch
	if err := r.db.First(&branch, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &branch, nil
}

func (r *branchRepo) FindByCode(code string) (*model.Branch, error) {
	var branch model.Branch
	if err := r.db.First(&branch, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &branch, nil
}

func (r *branchRepo) FindAll() ([]model.Branch, error) {
	var branches []model.Branch
	err := r.db.Order("name ASC").Find(&branches).Error
	return branches, err
}

// Delete removes the branch and its user assignments. No declarative cascade.
func (r *branchRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.UserBranch{}, "branch_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Branch{}, "id = ?", id).Error
	})
}

func (r *branchRepo) AssignUser(userID, branchID uuid.UUID) error {
	var existing model.UserBranch
	err := r.db.Where("user_id = ? AND branch_id = ?", userID, branchID).First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return r.db.Create(&model.UserBranch{UserID: userID, BranchID: branchID}).Error
}

func (r *branchRepo) UnassignUser(userID, branchID uuid.UUID) error {
	return r.db.Delete(&model.UserBranch{}, "user_id = ? AND branch_id = ?", userID, branchID).Error
}

func (r *branchRepo) FindBranchesByUser(userID uuid.UUID) ([]model.Branch, error) {
	var branches []model.Branch
	err := r.db.
		Joins("JOIN user_branches ub ON ub.branch_id = branches.id").
		Where("ub.user_id = ? AND ub.deleted_at IS NULL", userID).
		Find(&branches).Error
	return branches, err
}
