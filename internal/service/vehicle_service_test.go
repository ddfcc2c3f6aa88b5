package service

import (
	"testing"
	"time"

	"go-bakery-backend/internal/model"
	"go-bakery-backend/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newVehicleService(t *testing.T) (VehicleService, *gorm.DB) {
	t.Helper()
	db := testDB(t)
	svc := NewVehicleService(repository.NewVehicleRepo(db), repository.NewEmployeeRepo(db), db)
	return svc, db
}

func createVehicle(t *testing.T, svc VehicleService, reg string) *model.Vehicle {
	t.Helper()
	v := &model.Vehicle{
		Make: "Isuzu", Model: "NPR 400", Year: 2020,
		RegistrationNumber: reg,
	}
	require.NoError(t, svc.CreateVehicle(v))
	return v
}

func TestCreateVehicleDefaultsServiceWindow(t *testing.T) {
	svc, _ := newVehicleService(t)
	v := createVehicle(t, svc, "ND 100-200")

	got, err := svc.GetVehicle(v.ID)
	require.NoError(t, err)
	require.Equal(t, 10000, got.ServiceIntervalKm)
	require.Equal(t, 10000, got.NextServiceKm)
}

func TestRecordKmRefreshesCurrentReading(t *testing.T) {
	svc, _ := newVehicleService(t)
	v := createVehicle(t, svc, "ND 100-201")

	require.NoError(t, svc.RecordKm(&model.KmRecord{
		VehicleID: v.ID, KmReading: 12345, RecordedDate: time.Now(),
	}))

	got, err := svc.GetVehicle(v.ID)
	require.NoError(t, err)
	require.Equal(t, 12345, got.CurrentKm)

	records, err := svc.GetKmRecords(v.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestRecordKmRejectsUnknownVehicle(t *testing.T) {
	svc, _ := newVehicleService(t)

	err := svc.RecordKm(&model.KmRecord{
		VehicleID: 999, KmReading: 100, RecordedDate: time.Now(),
	})
	require.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestRecordServiceRollsWindowForward(t *testing.T) {
	svc, _ := newVehicleService(t)
	v := createVehicle(t, svc, "ND 100-202")

	require.NoError(t, svc.RecordService(&model.ServiceRecord{
		VehicleID: v.ID, ServiceKm: 15000, ServiceDate: time.Now(), Cost: 4200,
	}))

	got, err := svc.GetVehicle(v.ID)
	require.NoError(t, err)
	require.Equal(t, 15000, got.LastServiceKm)
	require.Equal(t, 25000, got.NextServiceKm)
}

func TestAssignAndClearDriver(t *testing.T) {
	svc, db := newVehicleService(t)
	v := createVehicle(t, svc, "ND 100-203")
	driver := createEmployee(t, db, "Zanele", "Mbeki", "9205057000086")

	require.NoError(t, svc.AssignDriver(v.ID, &driver.ID))
	got, err := svc.GetVehicle(v.ID)
	require.NoError(t, err)
	require.Equal(t, "Zanele Mbeki", got.AssignedDriverName)

	require.NoError(t, svc.AssignDriver(v.ID, nil))
	got, err = svc.GetVehicle(v.ID)
	require.NoError(t, err)
	require.Nil(t, got.AssignedDriverID)
	require.Empty(t, got.AssignedDriverName)
}

func TestAssignDriverToMissingVehicle(t *testing.T) {
	svc, db := newVehicleService(t)
	driver := createEmployee(t, db, "Thabo", "Nkosi", "8706076000083")

	err := svc.AssignDriver(999, &driver.ID)
	require.ErrorIs(t, err, ErrVehicleNotFound)
}
