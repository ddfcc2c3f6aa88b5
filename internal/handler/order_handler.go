package handler

import (
	"time"

	"go-bakery-backend/internal/model"
	"go-bakery-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	service service.OrderService
}

func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var o model.Order
	if err := c.BodyParser(&o); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := h.service.CreateOrder(&o); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Order created", "data": o})
}

func (h *OrderHandler) GetAll(c *fiber.Ctx) error {
	from, fromErr := time.Parse("2006-01-02", c.Query("from"))
	to, toErr := time.Parse("2006-01-02", c.Query("to"))
	if fromErr == nil && toErr == nil {
		// Inclusive day range.
		orders, err := h.service.GetOrdersByDateRange(from, to.AddDate(0, 0, 1))
		if err != nil {
			return repoError(c, err)
		}
		return c.JSON(orders)
	}
	orders, err := h.service.GetAllOrders()
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(orders)
}

func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}
	o, err := h.service.GetOrder(id)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(o)
}

func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}
	affected, err := h.service.DeleteOrder(id)
	if err != nil {
		return repoError(c, err)
	}
	if affected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Order not found"})
	}
	return c.JSON(fiber.Map{"message": "Order deleted"})
}
