package service

import (
	"testing"

	"go-bakery-backend/internal/model"
	"go-bakery-backend/internal/repository"

	"github.com/stretchr/testify/require"
)

func TestAddIncomeDerivesCoinsAndTotal(t *testing.T) {
	db := testDB(t)
	svc := NewFinanceService(repository.NewFinanceRepo(db))

	in := &model.Income{
		Description:   "Morning sales",
		Notes:         200,
		Denominations: model.Denominations{AmountR5: 25, AmountR2: 10, AmountR1: 3, Amount50c: 0.50},
	}
	require.NoError(t, svc.AddIncome(in))
	require.Equal(t, 38.50, in.Coins)
	require.Equal(t, 238.50, in.Total)

	rows, err := svc.GetIncome(nil, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, 238.50, rows[0].Total)
}

func TestAddExpenseDerivesCoins(t *testing.T) {
	db := testDB(t)
	svc := NewFinanceService(repository.NewFinanceRepo(db))

	ex := &model.Expense{
		Description:   "Diesel",
		Notes:         150,
		Denominations: model.Denominations{AmountR2: 4},
	}
	require.NoError(t, svc.AddExpense(ex))
	require.Equal(t, 4.0, ex.Coins)
	require.Equal(t, 154.0, ex.Total())
}

func TestAddExpenseRequiresDescription(t *testing.T) {
	db := testDB(t)
	svc := NewFinanceService(repository.NewFinanceRepo(db))

	err := svc.AddExpense(&model.Expense{Notes: 20})
	require.Error(t, err)
}
