package model

import "time"

// Denominations is the coin breakdown entered with each income or expense.
// Coins is always the sum of the four columns, derived at insert.
type Denominations struct {
	AmountR5  float64 `gorm:"column:amount_r5;not null;default:0" json:"amount_r5"`
	AmountR2  float64 `gorm:"column:amount_r2;not null;default:0" json:"amount_r2"`
	AmountR1  float64 `gorm:"column:amount_r1;not null;default:0" json:"amount_r1"`
	Amount50c float64 `gorm:"column:amount_50c;not null;default:0" json:"amount_50c"`
}

func (d Denominations) Sum() float64 {
	return d.AmountR5 + d.AmountR2 + d.AmountR1 + d.Amount50c
}

type Income struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Description string `gorm:"type:varchar(255)" json:"description,omitempty"`
	// Notes is the paper-money amount; Total = Notes + Coins.
	Notes float64 `gorm:"not null" json:"notes"`
	Coins float64 `gorm:"not null" json:"coins"`
	Total float64 `gorm:"not null" json:"total"`
	Denominations
	CreatedAt time.Time `json:"created_at"`
}

func (Income) TableName() string { return "income" }

type Expense struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Description string  `gorm:"type:varchar(255);not null" json:"description" validate:"required"`
	Notes       float64 `gorm:"not null" json:"notes"`
	Coins       float64 `gorm:"not null" json:"coins"`
	Denominations
	CreatedAt time.Time `json:"created_at"`
}

func (e *Expense) Total() float64 { return e.Notes + e.Coins }
