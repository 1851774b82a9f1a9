package domain

import "time"

type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "pending"
	StatusApproved ApprovalStatus = "approved"
)

// TimeEntry is one user's logged hours for one calendar date. At most
// one entry exists per (user, date); the store enforces this with a
// uniqueness constraint, so writes go through an upsert.
type TimeEntry struct {
	UserID int
	Date   time.Time
	Hours  float64
	Status ApprovalStatus
}

const (
	MinHours = 0.0
	MaxHours = 24.0
)

func ValidHours(hours float64) bool {
	return hours >= MinHours && hours <= MaxHours
}

// weekdayNumbers maps the Dutch weekday codes of the week view to ISO
// weekday numbers (Monday = 1).
var weekdayNumbers = map[string]int{
	"Ma": 1,
	"Di": 2,
	"Wo": 3,
	"Do": 4,
	"Vr": 5,
}

// ParseWeekdayCode resolves a weekday code to its ISO weekday number.
// Unknown or empty codes fall back to Monday; the web UI has always
// relied on that fallback, so it is part of the contract.
func ParseWeekdayCode(code string) int {
	if n, ok := weekdayNumbers[code]; ok {
		return n
	}
	return 1
}

// ApprovalReceipt reports the outcome of a bulk approval: how many
// entries changed state and the confirmation text shown to the admin.
type ApprovalReceipt struct {
	Approved int64
	Message  string
}
