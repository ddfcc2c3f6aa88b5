package model

import "time"

type Supplier struct {
	BaseModel
	Name          string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	ContactPerson string `gorm:"type:varchar(255);not null" json:"contact_person" validate:"required"`
	PhoneNumber   string `gorm:"type:varchar(30);not null" json:"phone_number" validate:"required"`
	Email         string `gorm:"type:varchar(255)" json:"email,omitempty" validate:"omitempty,email"`
	Address       string `gorm:"type:varchar(512)" json:"address,omitempty"`

	Invoices []SupplierInvoice `gorm:"constraint:OnDelete:CASCADE" json:"invoices,omitempty"`
	Payments []SupplierPayment `gorm:"constraint:OnDelete:CASCADE" json:"payments,omitempty"`
}

// SupplierInvoice and SupplierPayment together drive the supplier balance:
// sum of invoices minus sum of payments, folded on every read.
type SupplierInvoice struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SupplierID   uint      `gorm:"index;not null" json:"supplier_id" validate:"required"`
	SupplierName string    `gorm:"type:varchar(255);not null" json:"supplier_name"`
	Amount       float64   `gorm:"not null" json:"amount" validate:"required,gt=0"`
	InvoiceDate  time.Time `json:"invoice_date"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type SupplierPayment struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SupplierID   uint      `gorm:"index;not null" json:"supplier_id" validate:"required"`
	SupplierName string    `gorm:"type:varchar(255);not null" json:"supplier_name"`
	Amount       float64   `gorm:"not null" json:"amount" validate:"required,gt=0"`
	PaymentDate  time.Time `json:"payment_date"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
