package handler

import (
	"errors"

	"go-bakery-backend/internal/model"
	"go-bakery-backend/internal/repository"
	"go-bakery-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type VehicleHandler struct {
	service service.VehicleService
}

func NewVehicleHandler(s service.VehicleService) *VehicleHandler {
	return &VehicleHandler{service: s}
}

func (h *VehicleHandler) Create(c *fiber.Ctx) error {
	var v model.Vehicle
	if err := c.BodyParser(&v); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := h.service.CreateVehicle(&v); err != nil {
		if repository.IsConstraintErr(err) {
			return repoError(c, err)
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Vehicle created", "data": v})
}

func (h *VehicleHandler) GetAll(c *fiber.Ctx) error {
	vehicles, err := h.service.GetAllVehicles()
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(vehicles)
}

func (h *VehicleHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid vehicle ID"})
	}
	v, err := h.service.GetVehicle(id)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(v)
}

func (h *VehicleHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid vehicle ID"})
	}
	var v model.Vehicle
	if err := c.BodyParser(&v); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	v.ID = id
	affected, err := h.service.UpdateVehicle(&v)
	if err != nil {
		if repository.IsConstraintErr(err) {
			return repoError(c, err)
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if affected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Vehicle not found"})
	}
	return c.JSON(fiber.Map{"message": "Vehicle updated", "data": v})
}

func (h *VehicleHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid vehicle ID"})
	}
	affected, err := h.service.DeleteVehicle(id)
	if err != nil {
		return repoError(c, err)
	}
	if affected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Vehicle not found"})
	}
	return c.JSON(fiber.Map{"message": "Vehicle deleted"})
}

// AssignDriver body: {"driver_id": 3} or {"driver_id": null} to clear.
func (h *VehicleHandler) AssignDriver(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid vehicle ID"})
	}
	var body struct {
		DriverID *uint `json:"driver_id"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := h.service.AssignDriver(id, body.DriverID); err != nil {
		if errors.Is(err, service.ErrVehicleNotFound) || repository.IsNotFound(err) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Driver assignment updated"})
}

func (h *VehicleHandler) RecordKm(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid vehicle ID"})
	}
	var rec model.KmRecord
	if err := c.BodyParser(&rec); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	rec.VehicleID = id
	if err := h.service.RecordKm(&rec); err != nil {
		if errors.Is(err, service.ErrVehicleNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Km reading recorded", "data": rec})
}

func (h *VehicleHandler) GetKmRecords(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid vehicle ID"})
	}
	records, err := h.service.GetKmRecords(id)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(records)
}

func (h *VehicleHandler) RecordService(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid vehicle ID"})
	}
	var rec model.ServiceRecord
	if err := c.BodyParser(&rec); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	rec.VehicleID = id
	if err := h.service.RecordService(&rec); err != nil {
		if errors.Is(err, service.ErrVehicleNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Service recorded", "data": rec})
}

func (h *VehicleHandler) GetServiceRecords(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid vehicle ID"})
	}
	records, err := h.service.GetServiceRecords(id)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(records)
}
