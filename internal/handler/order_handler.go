package handler

import (
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	service service.OrderService
}

func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req service.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	req.UserID = getUserUUID(c)

	order, err := h.service.CreateOrder(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Order created", "data": order.ToResponse()})
}

func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	branchID, ok := optionalUUIDQuery(c, "branch_id")
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid branch_id"})
	}
	status := c.Query("status")

	orders, err := h.service.GetOrders(branchID, status)
	if err != nil {
		return respondError(c, err)
	}

	responses := make([]model.OrderResponse, len(orders))
	for i := range orders {
		responses[i] = orders[i].ToResponse()
	}
	return c.JSON(fiber.Map{"message": "Orders retrieved", "datas": responses})
}

func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}
	order, err := h.service.GetOrder(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Order retrieved", "data": order.ToResponse()})
}

func (h *OrderHandler) UpdateItemQuantity(c *fiber.Ctx) error {
	orderID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}
	itemID, err := parseUUID(c.Params("itemId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	var req struct {
		Quantity int `json:"qty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.service.UpdateItemQuantity(orderID, itemID, req.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Item updated", "data": order.ToResponse()})
}

func (h *OrderHandler) RemoveItem(c *fiber.Ctx) error {
	orderID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}
	itemID, err := parseUUID(c.Params("itemId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	order, err := h.service.RemoveItem(orderID, itemID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Item removed", "data": order.ToResponse()})
}

func (h *OrderHandler) AssignCustomer(c *fiber.Ctx) error {
	orderID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	var req struct {
		CustomerID string `json:"customer_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	customerID, err := parseUUID(req.CustomerID)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid customer ID"})
	}

	order, err := h.service.AssignCustomer(orderID, customerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Customer assigned", "data": order.ToResponse()})
}

func (h *OrderHandler) CancelOrder(c *fiber.Ctx) error {
	orderID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	order, err := h.service.CancelOrder(orderID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Order cancelled", "data": order.ToResponse()})
}
