package model

import "time"

// Production order item types.
const (
	ItemBrownBread     = "Brown Bread"
	ItemWhiteBread     = "White Bread"
	ItemBucketBiscuits = "Bucket Biscuits"
)

// LoavesPerTrolley converts bread trollies to loaf counts.
const LoavesPerTrolley = 180

type Order struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DriverID   *uint     `gorm:"index" json:"driver_id,omitempty"`
	DriverName string    `gorm:"type:varchar(255)" json:"driver_name,omitempty"`
	Driver     *Employee `gorm:"foreignKey:DriverID;constraint:OnDelete:SET NULL" json:"driver,omitempty" validate:"-"`

	VehicleID   *uint    `gorm:"index" json:"vehicle_id,omitempty"`
	VehicleInfo string   `gorm:"type:varchar(255)" json:"vehicle_info,omitempty"`
	Vehicle     *Vehicle `gorm:"foreignKey:VehicleID;constraint:OnDelete:SET NULL" json:"vehicle,omitempty" validate:"-"`

	TotalQuantity int       `gorm:"not null;default:0" json:"total_quantity"`
	CreatedAt     time.Time `json:"created_at"`

	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty" validate:"required,min=1,dive"`
}

type OrderItem struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	OrderID  uint   `gorm:"index;not null" json:"order_id"`
	ItemType string `gorm:"type:varchar(50);not null" json:"item_type" validate:"required,oneof='Brown Bread' 'White Bread' 'Bucket Biscuits'"`
	// Trollies for bread, direct bucket count for biscuits.
	TrolliesOrQty int `gorm:"not null" json:"trollies_or_qty" validate:"required,gt=0"`
	Quantity      int `gorm:"not null" json:"quantity"`
}

// DeriveQuantity applies the production count rule: bread is counted in
// loaves at 180 per trolley, biscuits are counted in buckets as entered.
func DeriveQuantity(itemType string, trolliesOrQty int) int {
	switch itemType {
	case ItemBrownBread, ItemWhiteBread:
		return trolliesOrQty * LoavesPerTrolley
	default:
		return trolliesOrQty
	}
}
