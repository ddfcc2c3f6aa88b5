package service

import (
	"time"

	"go-bakery-backend/internal/model"
	"go-bakery-backend/internal/repository"
	"go-bakery-backend/pkg/validator"
)

type FinanceService interface {
	AddIncome(in *model.Income) error
	GetIncome(from, to *time.Time) ([]model.Income, error)
	DeleteIncome(id uint) (int64, error)

	AddExpense(ex *model.Expense) error
	GetExpenses(from, to *time.Time) ([]model.Expense, error)
	DeleteExpense(id uint) (int64, error)
}

type financeService struct {
	financeRepo repository.FinanceRepository
}

func NewFinanceService(fRepo repository.FinanceRepository) FinanceService {
	return &financeService{financeRepo: fRepo}
}

// AddIncome derives the coin total from the denomination breakdown and the
// grand total from notes plus coins. The caller enters notes and the four
// denomination amounts; everything else is computed here.
func (s *financeService) AddIncome(in *model.Income) error {
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return validator.FirstError(errs)
	}
	in.Coins = in.Denominations.Sum()
	in.Total = in.Notes + in.Coins
	return s.financeRepo.CreateIncome(in)
}

func (s *financeService) GetIncome(from, to *time.Time) ([]model.Income, error) {
	return s.financeRepo.FindIncome(from, to)
}

func (s *financeService) DeleteIncome(id uint) (int64, error) {
	return s.financeRepo.DeleteIncome(id)
}

func (s *financeService) AddExpense(ex *model.Expense) error {
	if errs := validator.ValidateStruct(ex); len(errs) > 0 {
		return validator.FirstError(errs)
	}
	ex.Coins = ex.Denominations.Sum()
	return s.financeRepo.CreateExpense(ex)
}

func (s *financeService) GetExpenses(from, to *time.Time) ([]model.Expense, error) {
	return s.financeRepo.FindExpenses(from, to)
}

func (s *financeService) DeleteExpense(id uint) (int64, error) {
	return s.financeRepo.DeleteExpense(id)
}
