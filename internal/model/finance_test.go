package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDenominationsSum(t *testing.T) {
	d := Denominations{AmountR5: 25, AmountR2: 10, AmountR1: 3, Amount50c: 0.50}
	assert.Equal(t, 38.50, d.Sum())
}

func TestExpenseTotal(t *testing.T) {
	e := Expense{Notes: 150, Coins: 4}
	assert.Equal(t, 154.0, e.Total())
}
