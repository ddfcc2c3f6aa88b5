package service

import (
	"testing"

	"go-bakery-backend/internal/model"
	"go-bakery-backend/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrderService(t *testing.T) (OrderService, *gorm.DB) {
	t.Helper()
	db := testDB(t)
	svc := NewOrderService(
		repository.NewOrderRepo(db),
		repository.NewEmployeeRepo(db),
		repository.NewVehicleRepo(db),
	)
	return svc, db
}

func TestCreateOrderDerivesQuantities(t *testing.T) {
	svc, _ := newOrderService(t)

	o := &model.Order{
		Items: []model.OrderItem{
			{ItemType: model.ItemBrownBread, TrolliesOrQty: 3},
			{ItemType: model.ItemBucketBiscuits, TrolliesOrQty: 7},
		},
	}
	require.NoError(t, svc.CreateOrder(o))

	got, err := svc.GetOrder(o.ID)
	require.NoError(t, err)
	require.Equal(t, 547, got.TotalQuantity)

	byType := map[string]int{}
	for _, item := range got.Items {
		byType[item.ItemType] = item.Quantity
	}
	require.Equal(t, 540, byType[model.ItemBrownBread])
	require.Equal(t, 7, byType[model.ItemBucketBiscuits])
}

func TestCreateOrderSnapshotsDriverAndVehicle(t *testing.T) {
	svc, db := newOrderService(t)

	driver := createEmployee(t, db, "Sipho", "Dlamini", "8001015009087")
	vehicle := &model.Vehicle{
		Make: "Toyota", Model: "Hiace", Year: 2019,
		RegistrationNumber: "ND 123-456",
	}
	require.NoError(t, db.Create(vehicle).Error)

	o := &model.Order{
		DriverID:  &driver.ID,
		VehicleID: &vehicle.ID,
		Items:     []model.OrderItem{{ItemType: model.ItemWhiteBread, TrolliesOrQty: 1}},
	}
	require.NoError(t, svc.CreateOrder(o))

	got, err := svc.GetOrder(o.ID)
	require.NoError(t, err)
	require.Equal(t, "Sipho Dlamini", got.DriverName)
	require.Equal(t, "Toyota Hiace (ND 123-456)", got.VehicleInfo)
}

func TestCreateOrderRequiresItems(t *testing.T) {
	svc, _ := newOrderService(t)

	err := svc.CreateOrder(&model.Order{})
	require.Error(t, err)
}

func TestCreateOrderRejectsUnknownDriver(t *testing.T) {
	svc, _ := newOrderService(t)

	missing := uint(999)
	err := svc.CreateOrder(&model.Order{
		DriverID: &missing,
		Items:    []model.OrderItem{{ItemType: model.ItemBrownBread, TrolliesOrQty: 1}},
	})
	require.Error(t, err)
}
