package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fastRetries(t *testing.T) {
	old := retryInitialInterval
	retryInitialInterval = time.Millisecond
	t.Cleanup(func() { retryInitialInterval = old })
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestHoursService_SubmitHours(t *testing.T) {
	t.Run("day scope writes to today", func(t *testing.T) {
		mockEntryRepo := new(MockTimeEntryRepository)
		svc := NewHoursService(mockEntryRepo).(*hoursService)
		svc.now = func() time.Time { return time.Date(2024, time.March, 15, 13, 37, 0, 0, time.UTC) }

		today := date(2024, time.March, 15)
		mockEntryRepo.On("UpsertHours", mock.Anything, 1, today, 8.0).
			Return(domain.StatusPending, nil).Once()

		err := svc.SubmitHours(context.Background(), 1, domain.DayScope(), 8.0, "")

		require.NoError(t, err)
		mockEntryRepo.AssertExpectations(t)
	})

	t.Run("week scope resolves the weekday code", func(t *testing.T) {
		mockEntryRepo := new(MockTimeEntryRepository)
		svc := NewHoursService(mockEntryRepo)

		// Tuesday of ISO week 10 of 2024
		tuesday := date(2024, time.March, 5)
		mockEntryRepo.On("UpsertHours", mock.Anything, 1, tuesday, 3.0).
			Return(domain.StatusPending, nil).Once()

		err := svc.SubmitHours(context.Background(), 1, domain.WeekScope(2024, 10), 3.0, "Di")

		require.NoError(t, err)
		mockEntryRepo.AssertExpectations(t)
	})

	t.Run("unknown weekday code falls back to Monday", func(t *testing.T) {
		mockEntryRepo := new(MockTimeEntryRepository)
		svc := NewHoursService(mockEntryRepo)

		monday := date(2024, time.March, 4)
		mockEntryRepo.On("UpsertHours", mock.Anything, 1, monday, 5.0).
			Return(domain.StatusPending, nil).Once()

		err := svc.SubmitHours(context.Background(), 1, domain.WeekScope(2024, 10), 5.0, "XX")

		require.NoError(t, err)
		mockEntryRepo.AssertExpectations(t)
	})

	t.Run("overwriting an approved entry is allowed", func(t *testing.T) {
		mockEntryRepo := new(MockTimeEntryRepository)
		svc := NewHoursService(mockEntryRepo)

		monday := date(2024, time.March, 4)
		mockEntryRepo.On("UpsertHours", mock.Anything, 1, monday, 6.0).
			Return(domain.StatusApproved, nil).Once()

		err := svc.SubmitHours(context.Background(), 1, domain.WeekScope(2024, 10), 6.0, "Ma")

		require.NoError(t, err)
		mockEntryRepo.AssertExpectations(t)
	})

	t.Run("out of range hours are rejected", func(t *testing.T) {
		mockEntryRepo := new(MockTimeEntryRepository)
		svc := NewHoursService(mockEntryRepo)

		for _, hours := range []float64{-1, 24.5, 100} {
			err := svc.SubmitHours(context.Background(), 1, domain.DayScope(), hours, "")
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
		}
		mockEntryRepo.AssertNotCalled(t, "UpsertHours")
	})

	t.Run("month scope is not a submit target", func(t *testing.T) {
		mockEntryRepo := new(MockTimeEntryRepository)
		svc := NewHoursService(mockEntryRepo)

		err := svc.SubmitHours(context.Background(), 1, domain.MonthScope(2024, time.March), 4.0, "")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidScope))
		mockEntryRepo.AssertNotCalled(t, "UpsertHours")
	})

	t.Run("week out of range is rejected", func(t *testing.T) {
		mockEntryRepo := new(MockTimeEntryRepository)
		svc := NewHoursService(mockEntryRepo)

		err := svc.SubmitHours(context.Background(), 1, domain.WeekScope(2024, 54), 4.0, "Ma")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
		mockEntryRepo.AssertNotCalled(t, "UpsertHours")
	})

	t.Run("transient store error is retried", func(t *testing.T) {
		fastRetries(t)
		mockEntryRepo := new(MockTimeEntryRepository)
		svc := NewHoursService(mockEntryRepo)

		monday := date(2024, time.March, 4)
		mockEntryRepo.On("UpsertHours", mock.Anything, 1, monday, 4.0).
			Return(domain.ApprovalStatus(""), errors.New("connection reset")).Twice()
		mockEntryRepo.On("UpsertHours", mock.Anything, 1, monday, 4.0).
			Return(domain.StatusPending, nil).Once()

		err := svc.SubmitHours(context.Background(), 1, domain.WeekScope(2024, 10), 4.0, "Ma")

		require.NoError(t, err)
		mockEntryRepo.AssertExpectations(t)
	})

	t.Run("persistent store error surfaces after the retry budget", func(t *testing.T) {
		fastRetries(t)
		mockEntryRepo := new(MockTimeEntryRepository)
		svc := NewHoursService(mockEntryRepo)

		monday := date(2024, time.March, 4)
		mockEntryRepo.On("UpsertHours", mock.Anything, 1, monday, 4.0).
			Return(domain.ApprovalStatus(""), errors.New("connection reset")).Times(4)

		err := svc.SubmitHours(context.Background(), 1, domain.WeekScope(2024, 10), 4.0, "Ma")

		require.Error(t, err)
		mockEntryRepo.AssertExpectations(t)
	})

	t.Run("exhausted serialization conflicts map to a conflict error", func(t *testing.T) {
		fastRetries(t)
		mockEntryRepo := new(MockTimeEntryRepository)
		svc := NewHoursService(mockEntryRepo)

		monday := date(2024, time.March, 4)
		mockEntryRepo.On("UpsertHours", mock.Anything, 1, monday, 4.0).
			Return(domain.ApprovalStatus(""), &pgconn.PgError{Code: "40001"}).Times(4)

		err := svc.SubmitHours(context.Background(), 1, domain.WeekScope(2024, 10), 4.0, "Ma")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrConflictRetryExhausted))
		mockEntryRepo.AssertExpectations(t)
	})
}
