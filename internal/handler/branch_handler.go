package handler

import (
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type BranchHandler struct {
	service service.BranchService
}

func NewBranchHandler(s service.BranchService) *BranchHandler {
	return &BranchHandler{service: s}
}

func (h *BranchHandler) CreateBranch(c *fiber.Ctx) error {
	var branch model.Branch
	if err := c.BodyParser(&branch); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if branch.Name == "" || branch.Code == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Name and code are required"})
	}
	if err := h.service.CreateBranch(&branch); err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Branch created", "data": branch.ToResponse()})
}

func (h *BranchHandler) UpdateBranch(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid branch ID"})
	}
	var req model.Branch
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	branch, err := h.service.UpdateBranch(id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Branch updated", "data": branch.ToResponse()})
}

func (h *BranchHandler) DeleteBranch(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid branch ID"})
	}
	if err := h.service.DeleteBranch(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Branch deleted"})
}

func (h *BranchHandler) GetBranch(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid branch ID"})
	}
	branch, err := h.service.GetBranch(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Branch retrieved", "data": branch.ToResponse()})
}

func (h *BranchHandler) GetBranches(c *fiber.Ctx) error {
	branches, err := h.service.GetBranches()
	if err != nil {
		return respondError(c, err)
	}
	responses := make([]model.BranchResponse, len(branches))
	for i := range branches {
		responses[i] = branches[i].ToResponse()
	}
	return c.JSON(fiber.Map{"message": "Branches retrieved", "datas": responses})
}

func (h *BranchHandler) AssignUser(c *fiber.Ctx) error {
	branchID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid branch ID"})
	}
	var req struct {
		UserID string `json:"user_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	userID, err := parseUUID(req.UserID)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}
	if err := h.service.AssignUser(branchID, userID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User assigned to branch"})
}

func (h *BranchHandler) UnassignUser(c *fiber.Ctx) error {
	branchID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid branch ID"})
	}
	userID, err := parseUUID(c.Params("userId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}
	if err := h.service.UnassignUser(branchID, userID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User unassigned from branch"})
}

func (h *BranchHandler) GetMyBranches(c *fiber.Ctx) error {
	userID := getUserUUID(c)
	if userID == nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}
	branches, err := h.service.GetUserBranches(*userID)
	if err != nil {
		return respondError(c, err)
	}
	responses := make([]model.BranchResponse, len(branches))
	for i := range branches {
		responses[i] = branches[i].ToResponse()
	}
	return c.JSON(fiber.Map{"message": "Branches retrieved", "datas": responses})
}
