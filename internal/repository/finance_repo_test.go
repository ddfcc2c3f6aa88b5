package repository

import (
	"testing"
	"time"

	"go-bakery-backend/internal/model"

	"github.com/stretchr/testify/require"
)

func TestIncomeAndExpenseTotals(t *testing.T) {
	repo := NewFinanceRepo(testDB(t))

	require.NoError(t, repo.CreateIncome(&model.Income{
		Description: "Morning sales",
		Notes:       200, Coins: 38.50, Total: 238.50,
		Denominations: model.Denominations{AmountR5: 25, AmountR2: 10, AmountR1: 3, Amount50c: 0.50},
	}))
	require.NoError(t, repo.CreateIncome(&model.Income{
		Description: "Afternoon sales",
		Notes:       100, Coins: 11.50, Total: 111.50,
		Denominations: model.Denominations{AmountR5: 5, AmountR2: 4, AmountR1: 2, Amount50c: 0.50},
	}))
	require.NoError(t, repo.CreateExpense(&model.Expense{
		Description: "Diesel",
		Notes:       150, Coins: 0,
	}))

	income, err := repo.TotalIncome()
	require.NoError(t, err)
	require.Equal(t, 350.0, income)

	expenses, err := repo.TotalExpenses()
	require.NoError(t, err)
	require.Equal(t, 150.0, expenses)
}

func TestIncomeBetweenUsesHalfOpenRange(t *testing.T) {
	db := testDB(t)
	repo := NewFinanceRepo(db)
	now := time.Now()

	require.NoError(t, repo.CreateIncome(&model.Income{
		Notes: 100, Coins: 0, Total: 100,
	}))
	require.NoError(t, repo.CreateIncome(&model.Income{
		Notes: 40, Coins: 0, Total: 40,
		CreatedAt: now.AddDate(0, 0, -3),
	}))

	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	total, err := repo.IncomeBetween(start, start.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Equal(t, 100.0, total)
}

func TestCashBreakdownSumsDenominations(t *testing.T) {
	repo := NewFinanceRepo(testDB(t))

	require.NoError(t, repo.CreateIncome(&model.Income{
		Notes: 200, Coins: 38.50, Total: 238.50,
		Denominations: model.Denominations{AmountR5: 25, AmountR2: 10, AmountR1: 3, Amount50c: 0.50},
	}))
	require.NoError(t, repo.CreateIncome(&model.Income{
		Notes: 50, Coins: 8, Total: 58,
		Denominations: model.Denominations{AmountR5: 5, AmountR2: 2, AmountR1: 1},
	}))

	b, err := repo.GetCashBreakdown()
	require.NoError(t, err)
	require.Equal(t, 250.0, b.Notes)
	require.Equal(t, 30.0, b.TotalR5)
	require.Equal(t, 12.0, b.TotalR2)
	require.Equal(t, 4.0, b.TotalR1)
	require.Equal(t, 0.50, b.Total50c)
}

func TestDeleteIncomeReportsZeroForMissingRow(t *testing.T) {
	repo := NewFinanceRepo(testDB(t))

	affected, err := repo.DeleteIncome(42)
	require.NoError(t, err)
	require.EqualValues(t, 0, affected)
}
