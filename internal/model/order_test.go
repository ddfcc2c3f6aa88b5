package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveQuantity(t *testing.T) {
	assert.Equal(t, 540, DeriveQuantity(ItemBrownBread, 3))
	assert.Equal(t, 360, DeriveQuantity(ItemWhiteBread, 2))
	assert.Equal(t, 7, DeriveQuantity(ItemBucketBiscuits, 7))
}
