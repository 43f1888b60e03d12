package handler

import (
	"errors"

	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Helpers to pull user info from the JWT context (set by auth middleware)
func getUserID(c *fiber.Ctx) string {
	userID := c.Locals("user_id")
	if userID == nil {
		return "system"
	}
	return userID.(string)
}

func getUserUUID(c *fiber.Ctx) *uuid.UUID {
	raw := getUserID(c)
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

// optionalUUIDQuery parses a query parameter into a *uuid.UUID, nil when
// absent. The second return is false when the value is present but invalid.
func optionalUUIDQuery(c *fiber.Ctx, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, false
	}
	return &id, true
}

var notFoundErrors = []error{
	service.ErrOrderNotFound,
	service.ErrOrderItemNotFound,
	service.ErrPaymentNotFound,
	service.ErrProductNotFound,
	service.ErrVariantNotFound,
	service.ErrCategoryNotFound,
	service.ErrCustomerNotFound,
	service.ErrBranchNotFound,
	service.ErrProductStockNotFound,
	service.ErrVariantStockNotFound,
	service.ErrMovementNotFound,
	service.ErrBatchNotFound,
	service.ErrUserNotFound,
	service.ErrRoleNotFound,
}

var badRequestErrors = []error{
	service.ErrOrderNotEditable,
	service.ErrOrderNotPending,
	service.ErrOrderEmpty,
	service.ErrInvalidQuantity,
	service.ErrItemRefRequired,
	service.ErrProductStockInsufficient,
	service.ErrVariantStockInsufficient,
	service.ErrStockRowExists,
	service.ErrEmailExists,
	service.ErrValidation,
}

// respondError maps the service sentinel errors onto HTTP statuses. Unknown
// errors become a generic 500 so internals never leak to clients.
func respondError(c *fiber.Ctx, err error) error {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
	}
	return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
}
