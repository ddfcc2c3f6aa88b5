package model

import "time"

// ExpiryStatus classifies a dated record relative to the current date.
type ExpiryStatus string

const (
	ExpiryExpired ExpiryStatus = "EXPIRED"        // days < 0
	ExpirySoon    ExpiryStatus = "EXPIRING_SOON"  // 0 <= days <= 30
	ExpiryLater   ExpiryStatus = "EXPIRING_LATER" // 30 < days <= 90
	ExpiryNone    ExpiryStatus = "NONE"           // days > 90
)

// DaysUntil returns whole calendar days from now to the given date. Both
// sides are truncated to midnight so the result is exact at day boundaries.
func DaysUntil(date, now time.Time) int {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	n := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(n).Hours() / 24)
}

// ClassifyExpiry buckets a day count. Boundaries are inclusive of 30 and 90;
// day 0 (expires today) still counts as expiring-soon, not expired.
func ClassifyExpiry(days int) ExpiryStatus {
	switch {
	case days < 0:
		return ExpiryExpired
	case days <= 30:
		return ExpirySoon
	case days <= 90:
		return ExpiryLater
	default:
		return ExpiryNone
	}
}

// ExpiryStats is the pre-classified counts handed to notification and report
// callers.
type ExpiryStats struct {
	Expired       int `json:"expired"`
	ExpiringSoon  int `json:"expiring_soon"`
	ExpiringLater int `json:"expiring_later"`
	Total         int `json:"total"`
}

func (s *ExpiryStats) Add(status ExpiryStatus) {
	s.Total++
	switch status {
	case ExpiryExpired:
		s.Expired++
	case ExpirySoon:
		s.ExpiringSoon++
	case ExpiryLater:
		s.ExpiringLater++
	}
}
