package repository

import (
	"time"

	"go-bakery-backend/internal/model"

	"gorm.io/gorm"
)

// CashBreakdown is the summed denomination split over all income rows.
type CashBreakdown struct {
	Notes    float64 `gorm:"column:notes" json:"notes"`
	TotalR5  float64 `gorm:"column:total_r5" json:"r5"`
	TotalR2  float64 `gorm:"column:total_r2" json:"r2"`
	TotalR1  float64 `gorm:"column:total_r1" json:"r1"`
	Total50c float64 `gorm:"column:total_50c" json:"c50"`
}

type FinanceRepository interface {
	CreateIncome(in *model.Income) error
	FindIncome(from, to *time.Time) ([]model.Income, error)
	DeleteIncome(id uint) (int64, error)
	TotalIncome() (float64, error)
	IncomeBetween(from, to time.Time) (float64, error)

	CreateExpense(ex *model.Expense) error
	FindExpenses(from, to *time.Time) ([]model.Expense, error)
	DeleteExpense(id uint) (int64, error)
	TotalExpenses() (float64, error)
	ExpensesBetween(from, to time.Time) (float64, error)

	GetCashBreakdown() (*CashBreakdown, error)
}

type financeRepo struct {
	db *gorm.DB
}

func NewFinanceRepo(db *gorm.DB) FinanceRepository {
	return &financeRepo{db}
}

func (r *financeRepo) CreateIncome(in *model.Income) error {
	return r.db.Create(in).Error
}

func (r *financeRepo) FindIncome(from, to *time.Time) ([]model.Income, error) {
	q := r.db.Model(&model.Income{})
	if from != nil {
		q = q.Where("created_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("created_at <= ?", *to)
	}
	var income []model.Income
	err := q.Order("created_at DESC").Find(&income).Error
	return income, err
}

func (r *financeRepo) DeleteIncome(id uint) (int64, error) {
	res := r.db.Delete(&model.Income{}, id)
	return res.RowsAffected, res.Error
}

func (r *financeRepo) TotalIncome() (float64, error) {
	var total float64
	err := r.db.Model(&model.Income{}).
		Select("COALESCE(SUM(total), 0)").Scan(&total).Error
	return total, err
}

func (r *financeRepo) IncomeBetween(from, to time.Time) (float64, error) {
	var total float64
	err := r.db.Model(&model.Income{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Select("COALESCE(SUM(total), 0)").Scan(&total).Error
	return total, err
}

func (r *financeRepo) CreateExpense(ex *model.Expense) error {
	return r.db.Create(ex).Error
}

func (r *financeRepo) FindExpenses(from, to *time.Time) ([]model.Expense, error) {
	q := r.db.Model(&model.Expense{})
	if from != nil {
		q = q.Where("created_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("created_at <= ?", *to)
	}
	var expenses []model.Expense
	err := q.Order("created_at DESC").Find(&expenses).Error
	return expenses, err
}

func (r *financeRepo) DeleteExpense(id uint) (int64, error) {
	res := r.db.Delete(&model.Expense{}, id)
	return res.RowsAffected, res.Error
}

func (r *financeRepo) TotalExpenses() (float64, error) {
	var total float64
	err := r.db.Model(&model.Expense{}).
		Select("COALESCE(SUM(notes + coins), 0)").Scan(&total).Error
	return total, err
}

func (r *financeRepo) ExpensesBetween(from, to time.Time) (float64, error) {
	var total float64
	err := r.db.Model(&model.Expense{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Select("COALESCE(SUM(notes + coins), 0)").Scan(&total).Error
	return total, err
}

func (r *financeRepo) GetCashBreakdown() (*CashBreakdown, error) {
	var b CashBreakdown
	err := r.db.Model(&model.Income{}).
		Select(`COALESCE(SUM(notes), 0) as notes,
			COALESCE(SUM(amount_r5), 0) as total_r5,
			COALESCE(SUM(amount_r2), 0) as total_r2,
			COALESCE(SUM(amount_r1), 0) as total_r1,
			COALESCE(SUM(amount_50c), 0) as total_50c`).
		Scan(&b).Error
	return &b, err
}
