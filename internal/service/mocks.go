package service

import (
	"context"
	"time"

	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockTimeEntryRepository struct {
	mock.Mock
}

func (m *MockTimeEntryRepository) UpsertHours(ctx context.Context, userID int, date time.Time, hours float64) (domain.ApprovalStatus, error) {
	args := m.Called(ctx, userID, date, hours)
	return args.Get(0).(domain.ApprovalStatus), args.Error(1)
}

func (m *MockTimeEntryRepository) GetByUserAndDate(ctx context.Context, userID int, date time.Time) (*domain.TimeEntry, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeEntry), args.Error(1)
}

func (m *MockTimeEntryRepository) ApproveRange(ctx context.Context, userID int, start, end time.Time) (int64, error) {
	args := m.Called(ctx, userID, start, end)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTimeEntryRepository) SumTotalsByUser(ctx context.Context, start, end time.Time) ([]*domain.ReportRow, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ReportRow), args.Error(1)
}

func (m *MockTimeEntryRepository) SumWeekdaysByUser(ctx context.Context, start, end time.Time) ([]*domain.ReportRow, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ReportRow), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListByRole(ctx context.Context, role domain.Role) ([]*domain.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}
