package service

import (
	"context"

	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/domain"
)

// HoursService writes one day's hour value for one user. Repeating a
// submission with the same arguments leaves the same stored state.
type HoursService interface {
	SubmitHours(ctx context.Context, userID int, scope domain.Scope, hours float64, weekdayCode string) error
}
