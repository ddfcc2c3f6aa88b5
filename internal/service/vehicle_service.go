package service

import (
	"errors"
	"fmt"

	"go-bakery-backend/internal/model"
	"go-bakery-backend/internal/repository"
	"go-bakery-backend/pkg/validator"

	"gorm.io/gorm"
)

var ErrVehicleNotFound = errors.New("vehicle not found")

type VehicleService interface {
	CreateVehicle(v *model.Vehicle) error
	UpdateVehicle(v *model.Vehicle) (int64, error)
	DeleteVehicle(id uint) (int64, error)
	GetAllVehicles() ([]model.Vehicle, error)
	GetVehicle(id uint) (*model.Vehicle, error)
	AssignDriver(vehicleID uint, driverID *uint) error

	RecordKm(rec *model.KmRecord) error
	GetKmRecords(vehicleID uint) ([]model.KmRecord, error)
	RecordService(rec *model.ServiceRecord) error
	GetServiceRecords(vehicleID uint) ([]model.ServiceRecord, error)
}

type vehicleService struct {
	vehicleRepo  repository.VehicleRepository
	employeeRepo repository.EmployeeRepository
	db           *gorm.DB
}

func NewVehicleService(vRepo repository.VehicleRepository, eRepo repository.EmployeeRepository, db *gorm.DB) VehicleService {
	return &vehicleService{vehicleRepo: vRepo, employeeRepo: eRepo, db: db}
}

func (s *vehicleService) CreateVehicle(v *model.Vehicle) error {
	if errs := validator.ValidateStruct(v); len(errs) > 0 {
		return validator.FirstError(errs)
	}
	if v.ServiceIntervalKm == 0 {
		v.ServiceIntervalKm = 10000
	}
	if v.NextServiceKm == 0 {
		v.NextServiceKm = v.LastServiceKm + v.ServiceIntervalKm
	}
	return s.vehicleRepo.Create(v)
}

func (s *vehicleService) UpdateVehicle(v *model.Vehicle) (int64, error) {
	if errs := validator.ValidateStruct(v); len(errs) > 0 {
		return 0, validator.FirstError(errs)
	}
	return s.vehicleRepo.Update(v)
}

func (s *vehicleService) DeleteVehicle(id uint) (int64, error) {
	return s.vehicleRepo.Delete(id)
}

func (s *vehicleService) GetAllVehicles() ([]model.Vehicle, error) {
	return s.vehicleRepo.FindAll()
}

func (s *vehicleService) GetVehicle(id uint) (*model.Vehicle, error) {
	return s.vehicleRepo.FindByID(id)
}

// AssignDriver links a vehicle to an employee, denormalizing the name so
// historical screens keep showing who drove it. A nil driverID clears the
// assignment.
func (s *vehicleService) AssignDriver(vehicleID uint, driverID *uint) error {
	name := ""
	if driverID != nil {
		driver, err := s.employeeRepo.FindByID(*driverID)
		if err != nil {
			return fmt.Errorf("driver lookup: %w", err)
		}
		name = driver.FullName()
	}
	affected, err := s.vehicleRepo.AssignDriver(vehicleID, driverID, name)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrVehicleNotFound
	}
	return nil
}

// RecordKm appends an odometer reading and refreshes the vehicle's cached
// current km in the same transaction, mirroring the stock ledger shape.
func (s *vehicleService) RecordKm(rec *model.KmRecord) error {
	if errs := validator.ValidateStruct(rec); len(errs) > 0 {
		return validator.FirstError(errs)
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		var vehicle model.Vehicle
		if err := tx.First(&vehicle, "id = ?", rec.VehicleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVehicleNotFound
			}
			return err
		}
		if err := s.vehicleRepo.CreateKmRecord(tx, rec); err != nil {
			return err
		}
		return s.vehicleRepo.UpdateKmFields(tx, vehicle.ID, map[string]interface{}{
			"current_km": rec.KmReading,
		})
	})
}

func (s *vehicleService) GetKmRecords(vehicleID uint) ([]model.KmRecord, error) {
	return s.vehicleRepo.KmRecordsForVehicle(vehicleID)
}

// RecordService appends a service entry and rolls the service window
// forward: next service is due one interval after this one.
func (s *vehicleService) RecordService(rec *model.ServiceRecord) error {
	if errs := validator.ValidateStruct(rec); len(errs) > 0 {
		return validator.FirstError(errs)
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		var vehicle model.Vehicle
		if err := tx.First(&vehicle, "id = ?", rec.VehicleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVehicleNotFound
			}
			return err
		}
		if err := s.vehicleRepo.CreateServiceRecord(tx, rec); err != nil {
			return err
		}
		return s.vehicleRepo.UpdateKmFields(tx, vehicle.ID, map[string]interface{}{
			"last_service_km": rec.ServiceKm,
			"next_service_km": rec.ServiceKm + vehicle.ServiceIntervalKm,
		})
	})
}

func (s *vehicleService) GetServiceRecords(vehicleID uint) ([]model.ServiceRecord, error) {
	return s.vehicleRepo.ServiceRecordsForVehicle(vehicleID)
}
