package repository

import (
	"time"

	"go-bakery-backend/internal/model"

	"gorm.io/gorm"
)

// MovementFilter narrows the movement audit listing.
type MovementFilter struct {
	StockItemID uint
	Type        model.MovementType
	From        *time.Time
	To          *time.Time
}

type StockRepository interface {
	CreateItem(item *model.StockItem) error
	FindAllItems() ([]model.StockItem, error)
	FindItemByID(id uint) (*model.StockItem, error)
	SearchItemsByName(name string) ([]model.StockItem, error)
	UpdateItem(item *model.StockItem) (int64, error)
	DeleteItem(id uint) (int64, error)

	// UpdateQuantity and CreateMovement take a *gorm.DB so the ledger
	// transaction can run both inside one atomic block.
	UpdateQuantity(tx *gorm.DB, id uint, quantity float64) error
	CreateMovement(tx *gorm.DB, m *model.StockMovement) error
	FindMovements(filter MovementFilter) ([]model.StockMovement, error)
}

type stockRepo struct {
	db *gorm.DB
}

func NewStockRepo(db *gorm.DB) StockRepository {
	return &stockRepo{db}
}

func (r *stockRepo) CreateItem(item *model.StockItem) error {
	return r.db.Create(item).Error
}

func (r *stockRepo) FindAllItems() ([]model.StockItem, error) {
	var items []model.StockItem
	err := r.db.Order("name ASC").Find(&items).Error
	return items, err
}

func (r *stockRepo) FindItemByID(id uint) (*model.StockItem, error) {
	var item model.StockItem
	err := r.db.First(&item, "id = ?", id).Error
	return &item, err
}

func (r *stockRepo) SearchItemsByName(name string) ([]model.StockItem, error) {
	var items []model.StockItem
	err := r.db.Where("name LIKE ?", "%"+name+"%").Order("name ASC").Find(&items).Error
	return items, err
}

// UpdateItem is the explicit correction path: the only place besides the
// ledger transaction where quantity_on_hand may be written.
func (r *stockRepo) UpdateItem(item *model.StockItem) (int64, error) {
	res := r.db.Model(&model.StockItem{}).Where("id = ?", item.ID).
		Select("name", "unit", "quantity_on_hand").Updates(item)
	return res.RowsAffected, res.Error
}

func (r *stockRepo) DeleteItem(id uint) (int64, error) {
	res := r.db.Delete(&model.StockItem{}, id)
	return res.RowsAffected, res.Error
}

func (r *stockRepo) UpdateQuantity(tx *gorm.DB, id uint, quantity float64) error {
	return tx.Model(&model.StockItem{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"quantity_on_hand": quantity,
			"updated_at":       time.Now(),
		}).Error
}

func (r *stockRepo) CreateMovement(tx *gorm.DB, m *model.StockMovement) error {
	return tx.Create(m).Error
}

func (r *stockRepo) FindMovements(filter MovementFilter) ([]model.StockMovement, error) {
	q := r.db.Model(&model.StockMovement{})
	if filter.StockItemID != 0 {
		q = q.Where("stock_item_id = ?", filter.StockItemID)
	}
	if filter.Type != "" {
		q = q.Where("movement_type = ?", filter.Type)
	}
	if filter.From != nil {
		q = q.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("created_at <= ?", *filter.To)
	}

	var movements []model.StockMovement
	err := q.Order("created_at DESC").Find(&movements).Error
	return movements, err
}
