package handler

import (
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/service"
	"go-pos-backend/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type CustomerHandler struct {
	service service.CustomerService
}

func NewCustomerHandler(s service.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: s}
}

func (h *CustomerHandler) CreateCustomer(c *fiber.Ctx) error {
	var customer model.Customer
	if err := c.BodyParser(&customer); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&customer); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{
			"error": "Validation failed: field '" + errs[0].Field + "' failed on rule '" + errs[0].Tag + "'",
		})
	}
	if err := h.service.CreateCustomer(&customer); err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Customer created", "data": customer.ToResponse()})
}

func (h *CustomerHandler) UpdateCustomer(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid customer ID"})
	}
	var req model.Customer
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	customer, err := h.service.UpdateCustomer(id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Customer updated", "data": customer.ToResponse()})
}

func (h *CustomerHandler) DeleteCustomer(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid customer ID"})
	}
	if err := h.service.DeleteCustomer(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Customer deleted"})
}

func (h *CustomerHandler) GetCustomer(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid customer ID"})
	}
	customer, err := h.service.GetCustomer(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Customer retrieved", "data": customer.ToResponse()})
}

func (h *CustomerHandler) GetCustomers(c *fiber.Ctx) error {
	customers, err := h.service.GetCustomers(c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	responses := make([]model.CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = customers[i].ToResponse()
	}
	return c.JSON(fiber.Map{"message": "Customers retrieved", "datas": responses})
}

func (h *CustomerHandler) AddLoyaltyPoints(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid customer ID"})
	}
	var req struct {
		Points int `json:"points"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	customer, err := h.service.AddLoyaltyPoints(id, req.Points)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Loyalty points updated", "data": customer.ToResponse()})
}
