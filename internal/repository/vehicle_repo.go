package repository

import (
	"go-bakery-backend/internal/model"

	"gorm.io/gorm"
)

type VehicleRepository interface {
	Create(v *model.Vehicle) error
	FindAll() ([]model.Vehicle, error)
	FindByID(id uint) (*model.Vehicle, error)
	FindByRegistration(reg string) (*model.Vehicle, error)
	FindWithDiskExpiry() ([]model.Vehicle, error)
	Update(v *model.Vehicle) (int64, error)
	Delete(id uint) (int64, error)
	AssignDriver(vehicleID uint, driverID *uint, driverName string) (int64, error)

	// Km and service history rows take a *gorm.DB so the recording services
	// can append history and refresh the vehicle's cached fields atomically.
	CreateKmRecord(tx *gorm.DB, rec *model.KmRecord) error
	UpdateKmFields(tx *gorm.DB, vehicleID uint, fields map[string]interface{}) error
	KmRecordsForVehicle(vehicleID uint) ([]model.KmRecord, error)
	CreateServiceRecord(tx *gorm.DB, rec *model.ServiceRecord) error
	ServiceRecordsForVehicle(vehicleID uint) ([]model.ServiceRecord, error)
}

type vehicleRepo struct {
	db *gorm.DB
}

func NewVehicleRepo(db *gorm.DB) VehicleRepository {
	return &vehicleRepo{db}
}

func (r *vehicleRepo) Create(v *model.Vehicle) error {
	return r.db.Create(v).Error
}

func (r *vehicleRepo) FindAll() ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	err := r.db.Order("make ASC, model ASC").Find(&vehicles).Error
	return vehicles, err
}

func (r *vehicleRepo) FindByID(id uint) (*model.Vehicle, error) {
	var v model.Vehicle
	err := r.db.First(&v, "id = ?", id).Error
	return &v, err
}

func (r *vehicleRepo) FindByRegistration(reg string) (*model.Vehicle, error) {
	var v model.Vehicle
	err := r.db.First(&v, "registration_number = ?", reg).Error
	return &v, err
}

// FindWithDiskExpiry lists vehicles that have a license disk expiry set, for
// the notification and report callers.
func (r *vehicleRepo) FindWithDiskExpiry() ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	err := r.db.Where("license_disk_expiry IS NOT NULL").
		Order("license_disk_expiry ASC").Find(&vehicles).Error
	return vehicles, err
}

func (r *vehicleRepo) Update(v *model.Vehicle) (int64, error) {
	res := r.db.Model(&model.Vehicle{}).Where("id = ?", v.ID).
		Select("make", "model", "year", "registration_number",
			"license_disk_expiry", "last_renewal_date", "disk_number",
			"service_interval_km").
		Updates(v)
	return res.RowsAffected, res.Error
}

func (r *vehicleRepo) Delete(id uint) (int64, error) {
	res := r.db.Delete(&model.Vehicle{}, id)
	return res.RowsAffected, res.Error
}

func (r *vehicleRepo) AssignDriver(vehicleID uint, driverID *uint, driverName string) (int64, error) {
	res := r.db.Model(&model.Vehicle{}).Where("id = ?", vehicleID).
		Updates(map[string]interface{}{
			"assigned_driver_id":   driverID,
			"assigned_driver_name": driverName,
		})
	return res.RowsAffected, res.Error
}

func (r *vehicleRepo) CreateKmRecord(tx *gorm.DB, rec *model.KmRecord) error {
	return tx.Create(rec).Error
}

func (r *vehicleRepo) UpdateKmFields(tx *gorm.DB, vehicleID uint, fields map[string]interface{}) error {
	return tx.Model(&model.Vehicle{}).Where("id = ?", vehicleID).Updates(fields).Error
}

func (r *vehicleRepo) KmRecordsForVehicle(vehicleID uint) ([]model.KmRecord, error) {
	var records []model.KmRecord
	err := r.db.Where("vehicle_id = ?", vehicleID).
		Order("recorded_date DESC").Find(&records).Error
	return records, err
}

func (r *vehicleRepo) CreateServiceRecord(tx *gorm.DB, rec *model.ServiceRecord) error {
	return tx.Create(rec).Error
}

func (r *vehicleRepo) ServiceRecordsForVehicle(vehicleID uint) ([]model.ServiceRecord, error) {
	var records []model.ServiceRecord
	err := r.db.Where("vehicle_id = ?", vehicleID).
		Order("service_date DESC").Find(&records).Error
	return records, err
}
