package service

import (
	"fmt"
	"time"

	"go-bakery-backend/internal/model"
	"go-bakery-backend/internal/repository"
	"go-bakery-backend/pkg/validator"
)

type OrderService interface {
	CreateOrder(o *model.Order) error
	GetAllOrders() ([]model.Order, error)
	GetOrder(id uint) (*model.Order, error)
	GetOrdersByDateRange(from, to time.Time) ([]model.Order, error)
	DeleteOrder(id uint) (int64, error)
}

type orderService struct {
	orderRepo    repository.OrderRepository
	employeeRepo repository.EmployeeRepository
	vehicleRepo  repository.VehicleRepository
}

func NewOrderService(oRepo repository.OrderRepository, eRepo repository.EmployeeRepository, vRepo repository.VehicleRepository) OrderService {
	return &orderService{orderRepo: oRepo, employeeRepo: eRepo, vehicleRepo: vRepo}
}

// CreateOrder derives each item's quantity from the entered trolley/bucket
// count, sums the order total and snapshots the driver and vehicle display
// fields before persisting order and items together.
func (s *orderService) CreateOrder(o *model.Order) error {
	if errs := validator.ValidateStruct(o); len(errs) > 0 {
		return validator.FirstError(errs)
	}

	total := 0
	for i := range o.Items {
		o.Items[i].Quantity = model.DeriveQuantity(o.Items[i].ItemType, o.Items[i].TrolliesOrQty)
		total += o.Items[i].Quantity
	}
	o.TotalQuantity = total

	if o.DriverID != nil {
		driver, err := s.employeeRepo.FindByID(*o.DriverID)
		if err != nil {
			return fmt.Errorf("driver lookup: %w", err)
		}
		o.DriverName = driver.FullName()
	}
	if o.VehicleID != nil {
		vehicle, err := s.vehicleRepo.FindByID(*o.VehicleID)
		if err != nil {
			return fmt.Errorf("vehicle lookup: %w", err)
		}
		o.VehicleInfo = fmt.Sprintf("%s %s (%s)", vehicle.Make, vehicle.Model, vehicle.RegistrationNumber)
	}

	return s.orderRepo.Create(o)
}

func (s *orderService) GetAllOrders() ([]model.Order, error) {
	return s.orderRepo.FindAll()
}

func (s *orderService) GetOrder(id uint) (*model.Order, error) {
	return s.orderRepo.FindByID(id)
}

func (s *orderService) GetOrdersByDateRange(from, to time.Time) ([]model.Order, error) {
	return s.orderRepo.FindByDateRange(from, to)
}

func (s *orderService) DeleteOrder(id uint) (int64, error) {
	return s.orderRepo.Delete(id)
}
