package repository

import (
	"time"

	"go-bakery-backend/internal/model"

	"gorm.io/gorm"
)

type OrderRepository interface {
	// Create persists the order and its items in one transaction.
	Create(o *model.Order) error
	FindAll() ([]model.Order, error)
	FindByID(id uint) (*model.Order, error)
	FindByDateRange(from, to time.Time) ([]model.Order, error)
	Delete(id uint) (int64, error)
	TodayBreadQuantity(now time.Time) (int, error)
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db}
}

func (r *orderRepo) Create(o *model.Order) error {
	// GORM inserts the associated items with the parent in one transaction.
	return r.db.Create(o).Error
}

func (r *orderRepo) FindAll() ([]model.Order, error) {
	var orders []model.Order
	err := r.db.Preload("Items").Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepo) FindByID(id uint) (*model.Order, error) {
	var o model.Order
	err := r.db.Preload("Items").First(&o, "id = ?", id).Error
	return &o, err
}

func (r *orderRepo) FindByDateRange(from, to time.Time) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.Preload("Items").
		Where("created_at BETWEEN ? AND ?", from, to).
		Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepo) Delete(id uint) (int64, error) {
	res := r.db.Delete(&model.Order{}, id)
	return res.RowsAffected, res.Error
}

// TodayBreadQuantity sums today's bread loaves across orders. Bucket
// biscuits are not bread and stay out of the count.
func (r *orderRepo) TodayBreadQuantity(now time.Time) (int, error) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1)

	var total int
	err := r.db.Model(&model.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.created_at >= ? AND orders.created_at < ?", start, end).
		Where("order_items.item_type IN ?", []string{model.ItemBrownBread, model.ItemWhiteBread}).
		Select("COALESCE(SUM(order_items.quantity), 0)").
		Scan(&total).Error
	return total, err
}
