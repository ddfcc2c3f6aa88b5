package handler

import (
	"time"

	"go-bakery-backend/internal/model"
	"go-bakery-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type FinanceHandler struct {
	service service.FinanceService
}

func NewFinanceHandler(s service.FinanceService) *FinanceHandler {
	return &FinanceHandler{service: s}
}

func dateRangeQuery(c *fiber.Ctx) (from, to *time.Time) {
	if t, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		from = &t
	}
	if t, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
		end := t.AddDate(0, 0, 1)
		to = &end
	}
	return from, to
}

func (h *FinanceHandler) CreateIncome(c *fiber.Ctx) error {
	var in model.Income
	if err := c.BodyParser(&in); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := h.service.AddIncome(&in); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Income recorded", "data": in})
}

func (h *FinanceHandler) GetIncome(c *fiber.Ctx) error {
	from, to := dateRangeQuery(c)
	income, err := h.service.GetIncome(from, to)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(income)
}

func (h *FinanceHandler) DeleteIncome(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid income ID"})
	}
	affected, err := h.service.DeleteIncome(id)
	if err != nil {
		return repoError(c, err)
	}
	if affected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Income entry not found"})
	}
	return c.JSON(fiber.Map{"message": "Income entry deleted"})
}

func (h *FinanceHandler) CreateExpense(c *fiber.Ctx) error {
	var ex model.Expense
	if err := c.BodyParser(&ex); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := h.service.AddExpense(&ex); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Expense recorded", "data": ex})
}

func (h *FinanceHandler) GetExpenses(c *fiber.Ctx) error {
	from, to := dateRangeQuery(c)
	expenses, err := h.service.GetExpenses(from, to)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(expenses)
}

func (h *FinanceHandler) DeleteExpense(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid expense ID"})
	}
	affected, err := h.service.DeleteExpense(id)
	if err != nil {
		return repoError(c, err)
	}
	if affected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Expense not found"})
	}
	return c.JSON(fiber.Map{"message": "Expense deleted"})
}
