package handler

import (
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StockHandler struct {
	service service.StockService
}

func NewStockHandler(s service.StockService) *StockHandler {
	return &StockHandler{service: s}
}

func (h *StockHandler) CreateStock(c *fiber.Ctx) error {
	var req service.CreateStockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	stock, err := h.service.CreateStock(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Stock created", "data": stock.ToResponse()})
}

func (h *StockHandler) UpdateStock(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid stock ID"})
	}

	var req service.UpdateStockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	stock, err := h.service.UpdateStock(id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Stock updated", "data": stock.ToResponse()})
}

func (h *StockHandler) DeleteStock(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid stock ID"})
	}
	if err := h.service.DeleteStock(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Stock deleted"})
}

func (h *StockHandler) GetStock(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid stock ID"})
	}
	stock, err := h.service.GetStock(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Stock retrieved", "data": stock.ToResponse()})
}

func (h *StockHandler) GetStocks(c *fiber.Ctx) error {
	branchID, ok := optionalUUIDQuery(c, "branch_id")
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid branch_id"})
	}
	stocks, err := h.service.GetStocks(branchID)
	if err != nil {
		return respondError(c, err)
	}

	responses := make([]model.ProductStockResponse, len(stocks))
	for i := range stocks {
		responses[i] = stocks[i].ToResponse()
	}
	return c.JSON(fiber.Map{"message": "Stocks retrieved", "datas": responses})
}

func (h *StockHandler) CreateMovement(c *fiber.Ctx) error {
	var req service.CreateMovementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	movement, err := h.service.CreateMovement(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Movement recorded", "data": movement.ToResponse()})
}

func (h *StockHandler) GetMovements(c *fiber.Ctx) error {
	branchID, ok := optionalUUIDQuery(c, "branch_id")
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid branch_id"})
	}
	refType := model.ReferenceType(c.Query("reference_type"))

	movements, err := h.service.GetMovements(branchID, refType)
	if err != nil {
		return respondError(c, err)
	}

	responses := make([]model.StockMovementResponse, len(movements))
	for i := range movements {
		responses[i] = movements[i].ToResponse()
	}
	return c.JSON(fiber.Map{"message": "Movements retrieved", "datas": responses})
}

func (h *StockHandler) GetMovement(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid movement ID"})
	}
	movement, err := h.service.GetMovement(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Movement retrieved", "data": movement.ToResponse()})
}

func (h *StockHandler) CreateBatch(c *fiber.Ctx) error {
	var req service.CreateBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	batch, err := h.service.CreateBatch(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Batch created", "data": batch.ToResponse()})
}

func (h *StockHandler) UpdateBatch(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid batch ID"})
	}

	var req service.UpdateBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	batch, err := h.service.UpdateBatch(id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Batch updated", "data": batch.ToResponse()})
}

func (h *StockHandler) DeleteBatch(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid batch ID"})
	}
	if err := h.service.DeleteBatch(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Batch deleted"})
}

func (h *StockHandler) GetBatch(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid batch ID"})
	}
	batch, err := h.service.GetBatch(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Batch retrieved", "data": batch.ToResponse()})
}

func (h *StockHandler) GetBatches(c *fiber.Ctx) error {
	branchID, ok := optionalUUIDQuery(c, "branch_id")
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid branch_id"})
	}
	variantID, ok := optionalUUIDQuery(c, "variant_id")
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid variant_id"})
	}

	batches, err := h.service.GetBatches(branchID, variantID)
	if err != nil {
		return respondError(c, err)
	}

	responses := make([]model.ProductBatchResponse, len(batches))
	for i := range batches {
		responses[i] = batches[i].ToResponse()
	}
	return c.JSON(fiber.Map{"message": "Batches retrieved", "datas": responses})
}
