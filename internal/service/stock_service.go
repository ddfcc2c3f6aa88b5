package service

import (
	"errors"
	"fmt"

	"go-bakery-backend/internal/model"
	"go-bakery-backend/internal/repository"
	"go-bakery-backend/internal/ws"
	"go-bakery-backend/pkg/validator"

	"gorm.io/gorm"
)

var (
	ErrStockItemNotFound = errors.New("stock item not found")
	ErrInsufficientStock = errors.New("insufficient stock on hand")
	ErrUnknownMovement   = errors.New("unknown movement type")
)

type StockService interface {
	CreateItem(item *model.StockItem) error
	UpdateItem(item *model.StockItem) (int64, error)
	DeleteItem(id uint) (int64, error)
	GetAllItems() ([]model.StockItem, error)
	GetItem(id uint) (*model.StockItem, error)
	SearchItems(name string) ([]model.StockItem, error)

	RecordMovement(m *model.StockMovement) error
	GetMovements(filter repository.MovementFilter) ([]model.StockMovement, error)
}

type stockService struct {
	stockRepo repository.StockRepository
	db        *gorm.DB
	wsHub     *ws.Hub
}

func NewStockService(stockRepo repository.StockRepository, db *gorm.DB, hub *ws.Hub) StockService {
	return &stockService{stockRepo: stockRepo, db: db, wsHub: hub}
}

func (s *stockService) CreateItem(item *model.StockItem) error {
	if errs := validator.ValidateStruct(item); len(errs) > 0 {
		return validator.FirstError(errs)
	}
	return s.stockRepo.CreateItem(item)
}

// UpdateItem is the explicit correction form: it may rewrite the cached
// quantity directly, resetting the point movements are reconciled from.
func (s *stockService) UpdateItem(item *model.StockItem) (int64, error) {
	if errs := validator.ValidateStruct(item); len(errs) > 0 {
		return 0, validator.FirstError(errs)
	}
	affected, err := s.stockRepo.UpdateItem(item)
	if err == nil && affected > 0 {
		go s.wsHub.Publish(ws.Event{
			Type:    "stock",
			Action:  "item_corrected",
			Payload: item,
			Message: fmt.Sprintf("Stock item '%s' corrected to %.2f %s", item.Name, item.QuantityOnHand, item.Unit),
		})
	}
	return affected, err
}

func (s *stockService) DeleteItem(id uint) (int64, error) {
	return s.stockRepo.DeleteItem(id)
}

func (s *stockService) GetAllItems() ([]model.StockItem, error) {
	return s.stockRepo.FindAllItems()
}

func (s *stockService) GetItem(id uint) (*model.StockItem, error) {
	return s.stockRepo.FindItemByID(id)
}

func (s *stockService) SearchItems(name string) ([]model.StockItem, error) {
	return s.stockRepo.SearchItemsByName(name)
}

// RecordMovement is the stock ledger transaction. The movement row and the
// quantity write on the item commit together or not at all: the audit trail
// must never contain a movement whose balance effect was not applied.
func (s *stockService) RecordMovement(m *model.StockMovement) error {
	if errs := validator.ValidateStruct(m); len(errs) > 0 {
		return validator.FirstError(errs)
	}

	var newQuantity float64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var item model.StockItem
		if err := tx.First(&item, "id = ?", m.StockItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStockItemNotFound
			}
			return err
		}

		switch m.MovementType {
		case model.MovementReceived:
			newQuantity = item.QuantityOnHand + m.Quantity
		case model.MovementAllocated:
			if item.QuantityOnHand < m.Quantity {
				return ErrInsufficientStock
			}
			newQuantity = item.QuantityOnHand - m.Quantity
		default:
			return ErrUnknownMovement
		}

		// Snapshot the item name so the audit row survives renames.
		m.StockItemName = item.Name

		if err := s.stockRepo.CreateMovement(tx, m); err != nil {
			return err
		}
		return s.stockRepo.UpdateQuantity(tx, item.ID, newQuantity)
	})
	if err != nil {
		return err
	}

	go s.wsHub.Publish(ws.Event{
		Type:   "stock",
		Action: "movement_recorded",
		Payload: map[string]interface{}{
			"movement":     m,
			"new_quantity": newQuantity,
		},
		Message: fmt.Sprintf("%s %.2f of '%s'", m.MovementType, m.Quantity, m.StockItemName),
	})
	return nil
}

func (s *stockService) GetMovements(filter repository.MovementFilter) ([]model.StockMovement, error) {
	return s.stockRepo.FindMovements(filter)
}
