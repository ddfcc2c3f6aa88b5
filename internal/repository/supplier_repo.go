package repository

import (
	"go-bakery-backend/internal/model"

	"gorm.io/gorm"
)

type SupplierRepository interface {
	Create(s *model.Supplier) error
	FindAll() ([]model.Supplier, error)
	FindByID(id uint) (*model.Supplier, error)
	SearchByName(name string) ([]model.Supplier, error)
	Update(s *model.Supplier) (int64, error)
	Delete(id uint) (int64, error)

	CreateInvoice(inv *model.SupplierInvoice) error
	InvoicesForSupplier(supplierID uint) ([]model.SupplierInvoice, error)
	CreatePayment(p *model.SupplierPayment) error
	PaymentsForSupplier(supplierID uint) ([]model.SupplierPayment, error)
	Balance(supplierID uint) (float64, error)
}

type supplierRepo struct {
	db *gorm.DB
}

func NewSupplierRepo(db *gorm.DB) SupplierRepository {
	return &supplierRepo{db}
}

func (r *supplierRepo) Create(s *model.Supplier) error {
	return r.db.Create(s).Error
}

func (r *supplierRepo) FindAll() ([]model.Supplier, error) {
	var suppliers []model.Supplier
	err := r.db.Order("name ASC").Find(&suppliers).Error
	return suppliers, err
}

func (r *supplierRepo) FindByID(id uint) (*model.Supplier, error) {
	var s model.Supplier
	err := r.db.First(&s, "id = ?", id).Error
	return &s, err
}

func (r *supplierRepo) SearchByName(name string) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	err := r.db.Where("name LIKE ?", "%"+name+"%").Order("name ASC").Find(&suppliers).Error
	return suppliers, err
}

func (r *supplierRepo) Update(s *model.Supplier) (int64, error) {
	res := r.db.Model(&model.Supplier{}).Where("id = ?", s.ID).
		Select("name", "contact_person", "phone_number", "email", "address").
		Updates(s)
	return res.RowsAffected, res.Error
}

func (r *supplierRepo) Delete(id uint) (int64, error) {
	res := r.db.Delete(&model.Supplier{}, id)
	return res.RowsAffected, res.Error
}

func (r *supplierRepo) CreateInvoice(inv *model.SupplierInvoice) error {
	return r.db.Create(inv).Error
}

func (r *supplierRepo) InvoicesForSupplier(supplierID uint) ([]model.SupplierInvoice, error) {
	var invoices []model.SupplierInvoice
	err := r.db.Where("supplier_id = ?", supplierID).
		Order("invoice_date DESC").Find(&invoices).Error
	return invoices, err
}

func (r *supplierRepo) CreatePayment(p *model.SupplierPayment) error {
	return r.db.Create(p).Error
}

func (r *supplierRepo) PaymentsForSupplier(supplierID uint) ([]model.SupplierPayment, error) {
	var payments []model.SupplierPayment
	err := r.db.Where("supplier_id = ?", supplierID).
		Order("payment_date DESC").Find(&payments).Error
	return payments, err
}

// Balance is invoices minus payments over the full history, recomputed on
// every call.
func (r *supplierRepo) Balance(supplierID uint) (float64, error) {
	var invoiced, paid float64
	if err := r.db.Model(&model.SupplierInvoice{}).
		Where("supplier_id = ?", supplierID).
		Select("COALESCE(SUM(amount), 0)").Scan(&invoiced).Error; err != nil {
		return 0, err
	}
	if err := r.db.Model(&model.SupplierPayment{}).
		Where("supplier_id = ?", supplierID).
		Select("COALESCE(SUM(amount), 0)").Scan(&paid).Error; err != nil {
		return 0, err
	}
	return invoiced - paid, nil
}
