package model

import "time"

type IDType string

const (
	IDTypeID       IDType = "ID"
	IDTypePassport IDType = "PASSPORT"
)

type CreditType string

const (
	CreditBorrow CreditType = "BORROW"
	CreditRepay  CreditType = "REPAY"
)

// Employee roles as used by the bakery.
const (
	RoleBaker         = "Baker"
	RoleDriver        = "Driver"
	RoleGeneralWorker = "General Worker"
	RoleSupervisor    = "Supervisor"
	RoleManager       = "Manager"
)

type Employee struct {
	BaseModel
	FirstName string `gorm:"type:varchar(100);not null" json:"first_name" validate:"required"`
	LastName  string `gorm:"type:varchar(100);not null" json:"last_name" validate:"required"`
	IDNumber  string `gorm:"type:varchar(50);uniqueIndex;not null" json:"id_number" validate:"required"`
	IDType    IDType `gorm:"type:varchar(10);not null" json:"id_type" validate:"required,oneof=ID PASSPORT"`
	BirthDate string `gorm:"type:varchar(30)" json:"birth_date"`
	Role      string `gorm:"type:varchar(50);not null" json:"role" validate:"required"`
	PhotoPath string `gorm:"type:varchar(512)" json:"photo_path,omitempty"`

	CreditTransactions []CreditTransaction `gorm:"constraint:OnDelete:CASCADE" json:"credit_transactions,omitempty"`
	Documents          []EmployeeDocument  `gorm:"constraint:OnDelete:CASCADE" json:"documents,omitempty"`
	Licenses           []DriverLicense     `gorm:"constraint:OnDelete:CASCADE" json:"licenses,omitempty"`
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// CreditTransaction is an immutable borrow/repay record. The running balance
// is never stored; it is folded from the full history on every read.
type CreditTransaction struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	EmployeeID      uint       `gorm:"index;not null" json:"employee_id" validate:"required"`
	EmployeeName    string     `gorm:"type:varchar(255);not null" json:"employee_name"`
	TransactionType CreditType `gorm:"type:varchar(10);not null" json:"transaction_type" validate:"required,oneof=BORROW REPAY"`
	Amount          float64    `gorm:"not null" json:"amount" validate:"required,gt=0"`
	Reason          string     `gorm:"type:varchar(255)" json:"reason"`
	CreatedAt       time.Time  `json:"created_at"`
}

type EmployeeDocument struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	EmployeeID   uint      `gorm:"index;not null" json:"employee_id" validate:"required"`
	DocumentType string    `gorm:"type:varchar(100);not null" json:"document_type" validate:"required"`
	FileName     string    `gorm:"type:varchar(255);not null" json:"file_name" validate:"required"`
	FilePath     string    `gorm:"type:varchar(512);not null" json:"file_path" validate:"required"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

type DriverLicense struct {
	BaseModel
	EmployeeID    uint   `gorm:"index;not null" json:"employee_id" validate:"required"`
	LicenseNumber string `gorm:"type:varchar(50);not null" json:"license_number" validate:"required"`
	LicenseType   string `gorm:"type:varchar(20);not null" json:"license_type" validate:"required"`
	// Comma-separated extra classes, e.g. "C1,EB".
	LicenseTypes string     `gorm:"type:varchar(100)" json:"license_types,omitempty"`
	IssueDate    time.Time  `json:"issue_date"`
	ExpiryDate   time.Time  `gorm:"index" json:"expiry_date"`
	Restrictions string     `gorm:"type:varchar(255)" json:"restrictions,omitempty"`
	Employee     *Employee  `json:"employee,omitempty" validate:"-"`
}

func (l *DriverLicense) IsExpired(now time.Time) bool {
	return DaysUntil(l.ExpiryDate, now) < 0
}

func (l *DriverLicense) DaysUntilExpiry(now time.Time) int {
	return DaysUntil(l.ExpiryDate, now)
}
