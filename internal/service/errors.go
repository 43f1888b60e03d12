package service

import (
	"errors"
	"fmt"

	"go-pos-backend/pkg/validator"
)

// Sentinel errors returned by the services. Handlers map these onto HTTP
// status codes; anything else is treated as an internal error.
var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderItemNotFound = errors.New("order item not found")
	ErrOrderNotEditable  = errors.New("order is not editable")
	ErrOrderNotPending   = errors.New("order is not pending")
	ErrOrderEmpty        = errors.New("order must contain at least one item")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
	ErrItemRefRequired   = errors.New("exactly one of product_id or variant_id is required")

	ErrProductNotFound  = errors.New("product not found")
	ErrVariantNotFound  = errors.New("product variant not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrBranchNotFound   = errors.New("branch not found")

	ErrProductStockNotFound     = errors.New("product stock not found")
	ErrVariantStockNotFound     = errors.New("variant stock not found")
	ErrProductStockInsufficient = errors.New("insufficient product stock")
	ErrVariantStockInsufficient = errors.New("insufficient variant stock")
	ErrStockRowExists           = errors.New("stock row already exists for this item and branch")
	ErrMovementNotFound         = errors.New("stock movement not found")
	ErrBatchNotFound            = errors.New("product batch not found")

	ErrPaymentNotFound = errors.New("payment not found")

	ErrValidation = errors.New("validation failed")
)

// validateRequest evaluates the request struct's declarative rules and wraps
// the first failure in ErrValidation so handlers map it to a 400.
func validateRequest(req interface{}) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		e := errs[0]
		return fmt.Errorf("%w: field '%s' failed on rule '%s'", ErrValidation, e.Field, e.Tag)
	}
	return nil
}
