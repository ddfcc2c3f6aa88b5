package handler

import (
	"go-bakery-backend/internal/model"
	"go-bakery-backend/internal/repository"
	"go-bakery-backend/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type SupplierHandler struct {
	repo repository.SupplierRepository
}

func NewSupplierHandler(repo repository.SupplierRepository) *SupplierHandler {
	return &SupplierHandler{repo: repo}
}

func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var s model.Supplier
	if err := c.BodyParser(&s); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&s); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validator.FirstError(errs).Error()})
	}
	if err := h.repo.Create(&s); err != nil {
		return repoError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Supplier created", "data": s})
}

func (h *SupplierHandler) GetAll(c *fiber.Ctx) error {
	if name := c.Query("search"); name != "" {
		suppliers, err := h.repo.SearchByName(name)
		if err != nil {
			return repoError(c, err)
		}
		return c.JSON(suppliers)
	}
	suppliers, err := h.repo.FindAll()
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(suppliers)
}

func (h *SupplierHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid supplier ID"})
	}
	s, err := h.repo.FindByID(id)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(s)
}

func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid supplier ID"})
	}
	var s model.Supplier
	if err := c.BodyParser(&s); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	s.ID = id
	if errs := validator.ValidateStruct(&s); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validator.FirstError(errs).Error()})
	}
	affected, err := h.repo.Update(&s)
	if err != nil {
		return repoError(c, err)
	}
	if affected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Supplier not found"})
	}
	return c.JSON(fiber.Map{"message": "Supplier updated", "data": s})
}

func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid supplier ID"})
	}
	affected, err := h.repo.Delete(id)
	if err != nil {
		return repoError(c, err)
	}
	if affected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Supplier not found"})
	}
	return c.JSON(fiber.Map{"message": "Supplier deleted"})
}

func (h *SupplierHandler) CreateInvoice(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid supplier ID"})
	}
	var inv model.SupplierInvoice
	if err := c.BodyParser(&inv); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	inv.SupplierID = id

	supplier, err := h.repo.FindByID(id)
	if err != nil {
		return repoError(c, err)
	}
	inv.SupplierName = supplier.Name

	if errs := validator.ValidateStruct(&inv); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validator.FirstError(errs).Error()})
	}
	if err := h.repo.CreateInvoice(&inv); err != nil {
		return repoError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Invoice recorded", "data": inv})
}

func (h *SupplierHandler) CreatePayment(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid supplier ID"})
	}
	var p model.SupplierPayment
	if err := c.BodyParser(&p); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	p.SupplierID = id

	supplier, err := h.repo.FindByID(id)
	if err != nil {
		return repoError(c, err)
	}
	p.SupplierName = supplier.Name

	if errs := validator.ValidateStruct(&p); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validator.FirstError(errs).Error()})
	}
	if err := h.repo.CreatePayment(&p); err != nil {
		return repoError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Payment recorded", "data": p})
}

// GetAccount returns the supplier's invoices, payments and the derived
// balance in one response.
func (h *SupplierHandler) GetAccount(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid supplier ID"})
	}
	invoices, err := h.repo.InvoicesForSupplier(id)
	if err != nil {
		return repoError(c, err)
	}
	payments, err := h.repo.PaymentsForSupplier(id)
	if err != nil {
		return repoError(c, err)
	}
	balance, err := h.repo.Balance(id)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(fiber.Map{
		"balance":  balance,
		"invoices": invoices,
		"payments": payments,
	})
}
