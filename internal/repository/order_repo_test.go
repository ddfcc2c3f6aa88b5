package repository

import (
	"testing"
	"time"

	"go-bakery-backend/internal/model"

	"github.com/stretchr/testify/require"
)

func TestOrderCreatePersistsItemsTogether(t *testing.T) {
	repo := NewOrderRepo(testDB(t))

	o := &model.Order{
		TotalQuantity: 547,
		Items: []model.OrderItem{
			{ItemType: model.ItemBrownBread, TrolliesOrQty: 3, Quantity: 540},
			{ItemType: model.ItemBucketBiscuits, TrolliesOrQty: 7, Quantity: 7},
		},
	}
	require.NoError(t, repo.Create(o))

	got, err := repo.FindByID(o.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	require.Equal(t, 547, got.TotalQuantity)
}

func TestOrderDeleteCascadesItems(t *testing.T) {
	db := testDB(t)
	repo := NewOrderRepo(db)

	o := &model.Order{
		TotalQuantity: 180,
		Items:         []model.OrderItem{{ItemType: model.ItemWhiteBread, TrolliesOrQty: 1, Quantity: 180}},
	}
	require.NoError(t, repo.Create(o))

	affected, err := repo.Delete(o.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)

	var items int
	require.NoError(t, db.Raw("SELECT COUNT(*) FROM order_items").Scan(&items).Error)
	require.Zero(t, items)
}

func TestTodayBreadQuantityExcludesBiscuitsAndOldOrders(t *testing.T) {
	repo := NewOrderRepo(testDB(t))
	now := time.Now()

	today := &model.Order{
		TotalQuantity: 545,
		Items: []model.OrderItem{
			{ItemType: model.ItemBrownBread, TrolliesOrQty: 2, Quantity: 360},
			{ItemType: model.ItemWhiteBread, TrolliesOrQty: 1, Quantity: 180},
			{ItemType: model.ItemBucketBiscuits, TrolliesOrQty: 5, Quantity: 5},
		},
	}
	require.NoError(t, repo.Create(today))

	yesterday := &model.Order{
		TotalQuantity: 180,
		CreatedAt:     now.AddDate(0, 0, -1),
		Items:         []model.OrderItem{{ItemType: model.ItemBrownBread, TrolliesOrQty: 1, Quantity: 180}},
	}
	require.NoError(t, repo.Create(yesterday))

	total, err := repo.TodayBreadQuantity(now)
	require.NoError(t, err)
	require.Equal(t, 540, total)
}

func TestOrdersByDateRange(t *testing.T) {
	repo := NewOrderRepo(testDB(t))
	now := time.Now()

	old := &model.Order{
		TotalQuantity: 180,
		CreatedAt:     now.AddDate(0, 0, -10),
		Items:         []model.OrderItem{{ItemType: model.ItemBrownBread, TrolliesOrQty: 1, Quantity: 180}},
	}
	require.NoError(t, repo.Create(old))

	recent := &model.Order{
		TotalQuantity: 180,
		Items:         []model.OrderItem{{ItemType: model.ItemWhiteBread, TrolliesOrQty: 1, Quantity: 180}},
	}
	require.NoError(t, repo.Create(recent))

	orders, err := repo.FindByDateRange(now.AddDate(0, 0, -2), now.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, recent.ID, orders[0].ID)
}
