package handler

import (
	"time"

	"go-bakery-backend/internal/model"
	"go-bakery-backend/internal/repository"
	"go-bakery-backend/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// EmployeeHandler covers the employee family: the employee records plus
// their credit transactions, documents and driver licenses. Plain CRUD goes
// straight to the repository; only the ledger-style operations live in
// services.
type EmployeeHandler struct {
	repo repository.EmployeeRepository
}

func NewEmployeeHandler(repo repository.EmployeeRepository) *EmployeeHandler {
	return &EmployeeHandler{repo: repo}
}

func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var e model.Employee
	if err := c.BodyParser(&e); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&e); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validator.FirstError(errs).Error()})
	}
	if err := h.repo.Create(&e); err != nil {
		return repoError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Employee created", "data": e})
}

func (h *EmployeeHandler) GetAll(c *fiber.Ctx) error {
	if name := c.Query("search"); name != "" {
		employees, err := h.repo.SearchByName(name)
		if err != nil {
			return repoError(c, err)
		}
		return c.JSON(employees)
	}
	if role := c.Query("role"); role != "" {
		employees, err := h.repo.FindByRole(role)
		if err != nil {
			return repoError(c, err)
		}
		return c.JSON(employees)
	}
	employees, err := h.repo.FindAll()
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(employees)
}

func (h *EmployeeHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid employee ID"})
	}
	e, err := h.repo.FindByID(id)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(e)
}

func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid employee ID"})
	}
	var e model.Employee
	if err := c.BodyParser(&e); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	e.ID = id
	if errs := validator.ValidateStruct(&e); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validator.FirstError(errs).Error()})
	}
	affected, err := h.repo.Update(&e)
	if err != nil {
		return repoError(c, err)
	}
	if affected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Employee not found"})
	}
	return c.JSON(fiber.Map{"message": "Employee updated", "data": e})
}

func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid employee ID"})
	}
	affected, err := h.repo.Delete(id)
	if err != nil {
		return repoError(c, err)
	}
	if affected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Employee not found"})
	}
	return c.JSON(fiber.Map{"message": "Employee deleted"})
}

// CreateCredit records a borrow or repay against an employee, snapshotting
// the employee name onto the row.
func (h *EmployeeHandler) CreateCredit(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid employee ID"})
	}
	var t model.CreditTransaction
	if err := c.BodyParser(&t); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	t.EmployeeID = id

	employee, err := h.repo.FindByID(id)
	if err != nil {
		return repoError(c, err)
	}
	t.EmployeeName = employee.FullName()

	if errs := validator.ValidateStruct(&t); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validator.FirstError(errs).Error()})
	}
	if err := h.repo.CreateCredit(&t); err != nil {
		return repoError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Credit transaction recorded", "data": t})
}

func (h *EmployeeHandler) GetCredits(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid employee ID"})
	}
	transactions, err := h.repo.CreditsForEmployee(id)
	if err != nil {
		return repoError(c, err)
	}
	balance, err := h.repo.CreditBalance(id)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(fiber.Map{"balance": balance, "transactions": transactions})
}

func (h *EmployeeHandler) CreateDocument(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid employee ID"})
	}
	var d model.EmployeeDocument
	if err := c.BodyParser(&d); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	d.EmployeeID = id
	if d.UploadedAt.IsZero() {
		d.UploadedAt = time.Now()
	}
	if errs := validator.ValidateStruct(&d); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validator.FirstError(errs).Error()})
	}
	if err := h.repo.CreateDocument(&d); err != nil {
		return repoError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Document added", "data": d})
}

func (h *EmployeeHandler) GetDocuments(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid employee ID"})
	}
	docs, err := h.repo.DocumentsForEmployee(id)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(docs)
}

func (h *EmployeeHandler) DeleteDocument(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid document ID"})
	}
	affected, err := h.repo.DeleteDocument(id)
	if err != nil {
		return repoError(c, err)
	}
	if affected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Document not found"})
	}
	return c.JSON(fiber.Map{"message": "Document deleted"})
}

func (h *EmployeeHandler) CreateLicense(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid employee ID"})
	}
	var l model.DriverLicense
	if err := c.BodyParser(&l); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	l.EmployeeID = id
	if errs := validator.ValidateStruct(&l); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validator.FirstError(errs).Error()})
	}
	if err := h.repo.CreateLicense(&l); err != nil {
		return repoError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "License added", "data": l})
}

func (h *EmployeeHandler) UpdateLicense(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid license ID"})
	}
	var l model.DriverLicense
	if err := c.BodyParser(&l); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	l.ID = id
	affected, err := h.repo.UpdateLicense(&l)
	if err != nil {
		return repoError(c, err)
	}
	if affected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "License not found"})
	}
	return c.JSON(fiber.Map{"message": "License updated", "data": l})
}

func (h *EmployeeHandler) DeleteLicense(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid license ID"})
	}
	affected, err := h.repo.DeleteLicense(id)
	if err != nil {
		return repoError(c, err)
	}
	if affected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "License not found"})
	}
	return c.JSON(fiber.Map{"message": "License deleted"})
}

func (h *EmployeeHandler) GetLicenses(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid employee ID"})
	}
	licenses, err := h.repo.LicensesForEmployee(id)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(licenses)
}
