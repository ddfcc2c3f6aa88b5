package service

import (
	"errors"
	"testing"

	"go-bakery-backend/internal/model"
	"go-bakery-backend/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newStockService(t *testing.T) (StockService, *gorm.DB) {
	t.Helper()
	db := testDB(t)
	return NewStockService(repository.NewStockRepo(db), db, testHub()), db
}

func createItem(t *testing.T, svc StockService, name string, qty float64) *model.StockItem {
	t.Helper()
	item := &model.StockItem{Name: name, Unit: "kg", QuantityOnHand: qty}
	require.NoError(t, svc.CreateItem(item))
	return item
}

func TestRecordMovementAdjustsQuantity(t *testing.T) {
	svc, _ := newStockService(t)
	item := createItem(t, svc, "Cake Flour", 10)

	require.NoError(t, svc.RecordMovement(&model.StockMovement{
		StockItemID:  item.ID,
		MovementType: model.MovementReceived,
		Quantity:     5,
		SupplierName: "Premier Flour",
	}))
	require.NoError(t, svc.RecordMovement(&model.StockMovement{
		StockItemID:  item.ID,
		MovementType: model.MovementAllocated,
		Quantity:     4,
		EmployeeName: "Sipho Dlamini",
	}))

	got, err := svc.GetItem(item.ID)
	require.NoError(t, err)
	require.Equal(t, 11.0, got.QuantityOnHand)

	movements, err := svc.GetMovements(repository.MovementFilter{StockItemID: item.ID})
	require.NoError(t, err)
	require.Len(t, movements, 2)
	for _, m := range movements {
		require.Equal(t, "Cake Flour", m.StockItemName)
	}
}

func TestRecordMovementRejectsOverAllocation(t *testing.T) {
	svc, _ := newStockService(t)
	item := createItem(t, svc, "Yeast", 3)

	err := svc.RecordMovement(&model.StockMovement{
		StockItemID:  item.ID,
		MovementType: model.MovementAllocated,
		Quantity:     5,
	})
	require.ErrorIs(t, err, ErrInsufficientStock)

	got, err := svc.GetItem(item.ID)
	require.NoError(t, err)
	require.Equal(t, 3.0, got.QuantityOnHand)

	movements, err := svc.GetMovements(repository.MovementFilter{StockItemID: item.ID})
	require.NoError(t, err)
	require.Empty(t, movements, "a rejected allocation must leave no audit row")
}

func TestRecordMovementRejectsUnknownItem(t *testing.T) {
	svc, _ := newStockService(t)

	err := svc.RecordMovement(&model.StockMovement{
		StockItemID:  999,
		MovementType: model.MovementReceived,
		Quantity:     1,
	})
	require.ErrorIs(t, err, ErrStockItemNotFound)
}

func TestRecordMovementRejectsBadInput(t *testing.T) {
	svc, _ := newStockService(t)
	item := createItem(t, svc, "Salt", 10)

	err := svc.RecordMovement(&model.StockMovement{
		StockItemID:  item.ID,
		MovementType: "ADJUSTED",
		Quantity:     1,
	})
	require.Error(t, err)

	err = svc.RecordMovement(&model.StockMovement{
		StockItemID:  item.ID,
		MovementType: model.MovementReceived,
		Quantity:     -2,
	})
	require.Error(t, err)
}

// quantityFailRepo makes the quantity write fail after the movement insert, to
// prove the ledger transaction rolls the movement back with it.
type quantityFailRepo struct {
	repository.StockRepository
}

func (r *quantityFailRepo) UpdateQuantity(tx *gorm.DB, id uint, quantity float64) error {
	return errors.New("simulated write failure")
}

func TestRecordMovementIsAtomic(t *testing.T) {
	db := testDB(t)
	realRepo := repository.NewStockRepo(db)
	svc := NewStockService(&quantityFailRepo{realRepo}, db, testHub())

	item := &model.StockItem{Name: "Sugar", Unit: "kg", QuantityOnHand: 20}
	require.NoError(t, svc.CreateItem(item))

	err := svc.RecordMovement(&model.StockMovement{
		StockItemID:  item.ID,
		MovementType: model.MovementReceived,
		Quantity:     5,
	})
	require.Error(t, err)

	movements, err := realRepo.FindMovements(repository.MovementFilter{StockItemID: item.ID})
	require.NoError(t, err)
	require.Empty(t, movements, "failed quantity write must roll the movement back")

	got, err := realRepo.FindItemByID(item.ID)
	require.NoError(t, err)
	require.Equal(t, 20.0, got.QuantityOnHand)
}
