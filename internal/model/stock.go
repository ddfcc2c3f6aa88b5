package model

import "time"

type MovementType string

const (
	MovementReceived  MovementType = "RECEIVED"
	MovementAllocated MovementType = "ALLOCATED"
)

// StockItem holds the authoritative running on-hand quantity. The quantity is
// only changed through StockService.RecordMovement or an explicit correction
// via the update form, never edited alongside other fields casually.
type StockItem struct {
	BaseModel
	Name           string  `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Unit           string  `gorm:"type:varchar(20);not null" json:"unit" validate:"required"`
	QuantityOnHand float64 `gorm:"not null;default:0" json:"quantity_on_hand"`

	Movements []StockMovement `gorm:"constraint:OnDelete:CASCADE" json:"movements,omitempty"`
}

// StockMovement is an immutable audit record. It is never updated after
// creation; corrections happen through counter-movements.
type StockMovement struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	StockItemID uint   `gorm:"index;not null" json:"stock_item_id" validate:"required"`
	// Name as of the movement, kept even if the item is later renamed.
	StockItemName string       `gorm:"type:varchar(255);not null" json:"stock_item_name"`
	MovementType  MovementType `gorm:"type:varchar(10);not null" json:"movement_type" validate:"required,oneof=RECEIVED ALLOCATED"`
	Quantity      float64      `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	EmployeeName  string       `gorm:"type:varchar(255)" json:"employee_name,omitempty"`
	SupplierName  string       `gorm:"type:varchar(255)" json:"supplier_name,omitempty"`
	Notes         string       `json:"notes,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}
