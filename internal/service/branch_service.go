package service

import (
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"

	"github.com/google/uuid"
)

type BranchService interface {
	CreateBranch(req *model.Branch) error
	UpdateBranch(id uuid.UUID, req *model.Branch) (*model.Branch, error)
	DeleteBranch(id uuid.UUID) error
	GetBranch(id uuid.UUID) (*model.Branch, error)
	GetBranches() ([]model.Branch, error)
	AssignUser(branchID, userID uuid.UUID) error
	UnassignUser(branchID, userID uuid.UUID) error
	GetUserBranches(userID uuid.UUID) ([]model.Branch, error)
}

type branchService struct {
	branches repository.BranchRepository
	users    repository.UserRepository
}

func NewBranchService(branches repository.BranchRepository, users repository.UserRepository) BranchService {
	return &branchService{branches: branches, users: users}
}

func (s *branchService) CreateBranch(req *model.Branch) error {
	if err := validateRequest(req); err != nil {
		return err
	}
	return s.branches.Create(req)
}

func (s *branchService) UpdateBranch(id uuid.UUID, req *model.Branch) (*model.Branch, error) {
	branch, err := s.branches.FindByID(id)
	if err != nil {
		return nil, ErrBranchNotFound
	}
	if req.Name != "" {
		branch.Name = req.Name
	}
	if req.Code != "" {
		branch.Code = req.Code
	}
	if req.Address != "" {
		branch.Address = req.Address
	}
	if req.Phone != "" {
		branch.Phone = req.Phone
	}
	if req.Email != "" {
		branch.Email = req.Email
	}
	if req.City != "" {
		branch.City = req.City
	}
	if req.Province != "" {
		branch.Province = req.Province
	}
	branch.IsActive = req.IsActive
	if err := s.branches.Save(branch); err != nil {
		return nil, err
	}
	return branch, nil
}

func (s *branchService) DeleteBranch(id uuid.UUID) error {
	if _, err := s.branches.FindByID(id); err != nil {
		return ErrBranchNotFound
	}
	return s.branches.Delete(id)
}

func (s *branchService) GetBranch(id uuid.UUID) (*model.Branch, error) {
	branch, err := s.branches.FindByID(id)
	if err != nil {
		return nil, ErrBranchNotFound
	}
	return branch, nil
}

func (s *branchService) GetBranches() ([]model.Branch, error) {
	return s.branches.FindAll()
}

func (s *branchService) AssignUser(branchID, userID uuid.UUID) error {
	if _, err := s.branches.FindByID(branchID); err != nil {
		return ErrBranchNotFound
	}
	if _, err := s.users.FindByID(userID); err != nil {
		return err
	}
	return s.branches.AssignUser(userID, branchID)
}

func (s *branchService) UnassignUser(branchID, userID uuid.UUID) error {
	if _, err := s.branches.FindByID(branchID); err != nil {
		return ErrBranchNotFound
	}
	return s.branches.UnassignUser(userID, branchID)
}

func (s *branchService) GetUserBranches(userID uuid.UUID) ([]model.Branch, error) {
	return s.branches.FindBranchesByUser(userID)
}
