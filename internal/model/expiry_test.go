package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysUntilIgnoresTimeOfDay(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 50, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysUntil(time.Date(2026, 3, 10, 0, 5, 0, 0, time.UTC), now))
	assert.Equal(t, 1, DaysUntil(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, -1, DaysUntil(time.Date(2026, 3, 9, 23, 59, 0, 0, time.UTC), now))
	assert.Equal(t, 30, DaysUntil(time.Date(2026, 4, 9, 12, 0, 0, 0, time.UTC), now))
}

func TestClassifyExpiryBoundaries(t *testing.T) {
	cases := map[int]ExpiryStatus{
		-1: ExpiryExpired,
		0:  ExpirySoon,
		30: ExpirySoon,
		31: ExpiryLater,
		90: ExpiryLater,
		91: ExpiryNone,
	}
	for days, want := range cases {
		assert.Equal(t, want, ClassifyExpiry(days), "days=%d", days)
	}
}

func TestExpiryStatsAdd(t *testing.T) {
	var stats ExpiryStats
	for _, s := range []ExpiryStatus{ExpiryExpired, ExpirySoon, ExpirySoon, ExpiryLater, ExpiryNone} {
		stats.Add(s)
	}
	assert.Equal(t, 1, stats.Expired)
	assert.Equal(t, 2, stats.ExpiringSoon)
	assert.Equal(t, 1, stats.ExpiringLater)
	assert.Equal(t, 5, stats.Total)
}
