package repository

import (
	"go-bakery-backend/internal/model"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(e *model.Employee) error
	FindAll() ([]model.Employee, error)
	FindByID(id uint) (*model.Employee, error)
	FindByIDNumber(idNumber string) (*model.Employee, error)
	FindByRole(role string) ([]model.Employee, error)
	SearchByName(name string) ([]model.Employee, error)
	Update(e *model.Employee) (int64, error)
	Delete(id uint) (int64, error)

	CreateCredit(t *model.CreditTransaction) error
	CreditsForEmployee(employeeID uint) ([]model.CreditTransaction, error)
	CreditBalance(employeeID uint) (float64, error)

	CreateDocument(d *model.EmployeeDocument) error
	DocumentsForEmployee(employeeID uint) ([]model.EmployeeDocument, error)
	DeleteDocument(id uint) (int64, error)

	CreateLicense(l *model.DriverLicense) error
	UpdateLicense(l *model.DriverLicense) (int64, error)
	DeleteLicense(id uint) (int64, error)
	LicensesForEmployee(employeeID uint) ([]model.DriverLicense, error)
	FindAllLicenses() ([]model.DriverLicense, error)
}

type employeeRepo struct {
	db *gorm.DB
}

func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db}
}

func (r *employeeRepo) Create(e *model.Employee) error {
	return r.db.Create(e).Error
}

func (r *employeeRepo) FindAll() ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.Order("last_name ASC, first_name ASC").Find(&employees).Error
	return employees, err
}

func (r *employeeRepo) FindByID(id uint) (*model.Employee, error) {
	var e model.Employee
	err := r.db.First(&e, "id = ?", id).Error
	return &e, err
}

func (r *employeeRepo) FindByIDNumber(idNumber string) (*model.Employee, error) {
	var e model.Employee
	err := r.db.First(&e, "id_number = ?", idNumber).Error
	return &e, err
}

func (r *employeeRepo) FindByRole(role string) ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.Where("role = ?", role).Order("last_name ASC").Find(&employees).Error
	return employees, err
}

func (r *employeeRepo) SearchByName(name string) ([]model.Employee, error) {
	var employees []model.Employee
	pattern := "%" + name + "%"
	err := r.db.Where("first_name LIKE ? OR last_name LIKE ?", pattern, pattern).
		Order("last_name ASC").Find(&employees).Error
	return employees, err
}

func (r *employeeRepo) Update(e *model.Employee) (int64, error) {
	res := r.db.Model(&model.Employee{}).Where("id = ?", e.ID).
		Select("first_name", "last_name", "id_number", "id_type", "birth_date", "role", "photo_path").
		Updates(e)
	return res.RowsAffected, res.Error
}

// Delete cascades to credit transactions, documents and licenses through the
// schema's foreign keys. The driver cross-link on vehicles is SET NULL for
// the id, but the denormalized name has to be cleared by hand in the same
// transaction.
func (r *employeeRepo) Delete(id uint) (int64, error) {
	var affected int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Vehicle{}).
			Where("assigned_driver_id = ?", id).
			Updates(map[string]interface{}{
				"assigned_driver_id":   nil,
				"assigned_driver_name": nil,
			}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Employee{}, id)
		affected = res.RowsAffected
		return res.Error
	})
	return affected, err
}

func (r *employeeRepo) CreateCredit(t *model.CreditTransaction) error {
	return r.db.Create(t).Error
}

func (r *employeeRepo) CreditsForEmployee(employeeID uint) ([]model.CreditTransaction, error) {
	var transactions []model.CreditTransaction
	err := r.db.Where("employee_id = ?", employeeID).
		Order("created_at DESC").Find(&transactions).Error
	return transactions, err
}

// CreditBalance folds the full transaction history on every call; the
// balance is never stored.
func (r *employeeRepo) CreditBalance(employeeID uint) (float64, error) {
	var balance float64
	err := r.db.Model(&model.CreditTransaction{}).
		Where("employee_id = ?", employeeID).
		Select("COALESCE(SUM(CASE WHEN transaction_type = 'BORROW' THEN amount ELSE -amount END), 0)").
		Scan(&balance).Error
	return balance, err
}

func (r *employeeRepo) CreateDocument(d *model.EmployeeDocument) error {
	return r.db.Create(d).Error
}

func (r *employeeRepo) DocumentsForEmployee(employeeID uint) ([]model.EmployeeDocument, error) {
	var docs []model.EmployeeDocument
	err := r.db.Where("employee_id = ?", employeeID).
		Order("uploaded_at DESC").Find(&docs).Error
	return docs, err
}

func (r *employeeRepo) DeleteDocument(id uint) (int64, error) {
	res := r.db.Delete(&model.EmployeeDocument{}, id)
	return res.RowsAffected, res.Error
}

func (r *employeeRepo) CreateLicense(l *model.DriverLicense) error {
	return r.db.Create(l).Error
}

func (r *employeeRepo) UpdateLicense(l *model.DriverLicense) (int64, error) {
	res := r.db.Model(&model.DriverLicense{}).Where("id = ?", l.ID).
		Select("license_number", "license_type", "license_types", "issue_date", "expiry_date", "restrictions").
		Updates(l)
	return res.RowsAffected, res.Error
}

func (r *employeeRepo) DeleteLicense(id uint) (int64, error) {
	res := r.db.Delete(&model.DriverLicense{}, id)
	return res.RowsAffected, res.Error
}

func (r *employeeRepo) LicensesForEmployee(employeeID uint) ([]model.DriverLicense, error) {
	var licenses []model.DriverLicense
	err := r.db.Where("employee_id = ?", employeeID).
		Order("expiry_date ASC").Find(&licenses).Error
	return licenses, err
}

func (r *employeeRepo) FindAllLicenses() ([]model.DriverLicense, error) {
	var licenses []model.DriverLicense
	err := r.db.Preload("Employee").Order("expiry_date ASC").Find(&licenses).Error
	return licenses, err
}
