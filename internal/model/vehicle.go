package model

import "time"

type Vehicle struct {
	BaseModel
	Make               string `gorm:"type:varchar(100);not null" json:"make" validate:"required"`
	Model              string `gorm:"type:varchar(100);not null" json:"model" validate:"required"`
	Year               int    `gorm:"not null" json:"year" validate:"required"`
	RegistrationNumber string `gorm:"type:varchar(20);uniqueIndex;not null" json:"registration_number" validate:"required"`

	// Driver cross-link: SET NULL on employee delete, never cascaded.
	AssignedDriverID   *uint     `gorm:"index" json:"assigned_driver_id,omitempty"`
	AssignedDriverName string    `gorm:"type:varchar(255)" json:"assigned_driver_name,omitempty"`
	AssignedDriver     *Employee `gorm:"foreignKey:AssignedDriverID;constraint:OnDelete:SET NULL" json:"assigned_driver,omitempty" validate:"-"`

	LicenseDiskExpiry *time.Time `json:"license_disk_expiry,omitempty"`
	LastRenewalDate   *time.Time `json:"last_renewal_date,omitempty"`
	DiskNumber        string     `gorm:"type:varchar(50)" json:"disk_number,omitempty"`

	// Cached km tracking, maintained transactionally alongside km/service
	// records.
	CurrentKm         int `gorm:"not null;default:0" json:"current_km"`
	LastServiceKm     int `gorm:"not null;default:0" json:"last_service_km"`
	ServiceIntervalKm int `gorm:"not null;default:10000" json:"service_interval_km"`
	NextServiceKm     int `gorm:"not null;default:10000" json:"next_service_km"`

	KmRecords      []KmRecord      `gorm:"constraint:OnDelete:CASCADE" json:"km_records,omitempty"`
	ServiceRecords []ServiceRecord `gorm:"constraint:OnDelete:CASCADE" json:"service_records,omitempty"`
}

func (v *Vehicle) DiskDaysUntilExpiry(now time.Time) (int, bool) {
	if v.LicenseDiskExpiry == nil {
		return 0, false
	}
	return DaysUntil(*v.LicenseDiskExpiry, now), true
}

// KmRecord is an append-only odometer history row. Monotonicity of readings
// is the form layer's job, not enforced here.
type KmRecord struct {
	BaseModel
	VehicleID    uint      `gorm:"index;not null" json:"vehicle_id" validate:"required"`
	KmReading    int       `gorm:"not null" json:"km_reading" validate:"required,gt=0"`
	RecordedDate time.Time `gorm:"index" json:"recorded_date"`
	Notes        string    `json:"notes,omitempty"`
}

type ServiceRecord struct {
	BaseModel
	VehicleID   uint      `gorm:"index;not null" json:"vehicle_id" validate:"required"`
	ServiceKm   int       `gorm:"not null" json:"service_km" validate:"required,gt=0"`
	ServiceDate time.Time `json:"service_date"`
	Cost        float64   `json:"cost"`
	Notes       string    `json:"notes,omitempty"`
}
