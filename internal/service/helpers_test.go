package service

import (
	"path/filepath"
	"testing"

	"go-bakery-backend/internal/model"
	"go-bakery-backend/internal/ws"
	"go-bakery-backend/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	store, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store.DB()
}

func testHub() *ws.Hub {
	hub := ws.NewHub()
	go hub.Run()
	return hub
}

func createEmployee(t *testing.T, db *gorm.DB, first, last, idNumber string) *model.Employee {
	t.Helper()
	e := &model.Employee{
		FirstName: first,
		LastName:  last,
		IDNumber:  idNumber,
		IDType:    model.IDTypeID,
		Role:      model.RoleDriver,
	}
	require.NoError(t, db.Create(e).Error)
	return e
}
