package handler

import (
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	service service.PaymentService
}

func NewPaymentHandler(s service.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: s}
}

func (h *PaymentHandler) CreatePayment(c *fiber.Ctx) error {
	var req service.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	payment, err := h.service.CreatePayment(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Payment created", "data": payment.ToResponse()})
}

func (h *PaymentHandler) VerifyPayment(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid payment ID"})
	}

	payment, err := h.service.VerifyPayment(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Payment verified", "data": payment.ToResponse()})
}

func (h *PaymentHandler) GetPayment(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid payment ID"})
	}
	payment, err := h.service.GetPayment(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Payment retrieved", "data": payment.ToResponse()})
}

func (h *PaymentHandler) GetPayments(c *fiber.Ctx) error {
	orderID, ok := optionalUUIDQuery(c, "order_id")
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order_id"})
	}

	payments, err := h.service.GetPayments(orderID)
	if err != nil {
		return respondError(c, err)
	}

	responses := make([]model.PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = payments[i].ToResponse()
	}
	return c.JSON(fiber.Map{"message": "Payments retrieved", "datas": responses})
}
