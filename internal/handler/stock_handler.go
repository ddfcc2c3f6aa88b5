package handler

import (
	"errors"
	"time"

	"go-bakery-backend/internal/model"
	"go-bakery-backend/internal/repository"
	"go-bakery-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StockHandler struct {
	service service.StockService
}

func NewStockHandler(s service.StockService) *StockHandler {
	return &StockHandler{service: s}
}

func (h *StockHandler) CreateItem(c *fiber.Ctx) error {
	var item model.StockItem
	if err := c.BodyParser(&item); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := h.service.CreateItem(&item); err != nil {
		if repository.IsConstraintErr(err) {
			return repoError(c, err)
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Stock item created", "data": item})
}

func (h *StockHandler) GetItems(c *fiber.Ctx) error {
	if name := c.Query("search"); name != "" {
		items, err := h.service.SearchItems(name)
		if err != nil {
			return repoError(c, err)
		}
		return c.JSON(items)
	}
	items, err := h.service.GetAllItems()
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(items)
}

func (h *StockHandler) GetItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid stock item ID"})
	}
	item, err := h.service.GetItem(id)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(item)
}

func (h *StockHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid stock item ID"})
	}
	var item model.StockItem
	if err := c.BodyParser(&item); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	item.ID = id
	affected, err := h.service.UpdateItem(&item)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if affected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Stock item not found"})
	}
	return c.JSON(fiber.Map{"message": "Stock item updated", "data": item})
}

func (h *StockHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid stock item ID"})
	}
	affected, err := h.service.DeleteItem(id)
	if err != nil {
		return repoError(c, err)
	}
	if affected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Stock item not found"})
	}
	return c.JSON(fiber.Map{"message": "Stock item deleted"})
}

func (h *StockHandler) RecordMovement(c *fiber.Ctx) error {
	var m model.StockMovement
	if err := c.BodyParser(&m); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if m.EmployeeName == "" {
		m.EmployeeName = getUserName(c)
	}
	if err := h.service.RecordMovement(&m); err != nil {
		if errors.Is(err, service.ErrStockItemNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Movement recorded", "data": m})
}

func (h *StockHandler) GetMovements(c *fiber.Ctx) error {
	filter := repository.MovementFilter{
		Type: model.MovementType(c.Query("type")),
	}
	if id := c.QueryInt("item_id"); id > 0 {
		filter.StockItemID = uint(id)
	}
	if from := c.Query("from"); from != "" {
		if t, err := time.Parse(time.RFC3339, from); err == nil {
			filter.From = &t
		}
	}
	if to := c.Query("to"); to != "" {
		if t, err := time.Parse(time.RFC3339, to); err == nil {
			filter.To = &t
		}
	}

	movements, err := h.service.GetMovements(filter)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(movements)
}
