package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScope(t *testing.T) {
	t.Run("vandaag", func(t *testing.T) {
		scope, err := ParseScope("vandaag", 2024, 3, 10)
		require.NoError(t, err)
		assert.Equal(t, ScopeDay, scope.Kind)
	})

	t.Run("week carries year and week", func(t *testing.T) {
		scope, err := ParseScope("week", 2024, 3, 10)
		require.NoError(t, err)
		assert.Equal(t, ScopeWeek, scope.Kind)
		assert.Equal(t, 2024, scope.Year)
		assert.Equal(t, 10, scope.Week)
	})

	t.Run("maand carries year and month", func(t *testing.T) {
		scope, err := ParseScope("maand", 2024, 3, 10)
		require.NoError(t, err)
		assert.Equal(t, ScopeMonth, scope.Kind)
		assert.Equal(t, 2024, scope.Year)
		assert.Equal(t, time.March, scope.Month)
	})

	t.Run("unknown filter token", func(t *testing.T) {
		for _, filter := range []string{"", "jaar", "today", "Week"} {
			_, err := ParseScope(filter, 2024, 3, 10)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidScope))
		}
	})
}

func TestParseWeekdayCode(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"Ma", 1},
		{"Di", 2},
		{"Wo", 3},
		{"Do", 4},
		{"Vr", 5},
		{"XX", 1}, // unknown codes fall back to Monday
		{"", 1},
		{"Za", 1}, // weekend codes are not part of the week view
		{"ma", 1}, // codes are case-sensitive
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseWeekdayCode(tt.code), "code %q", tt.code)
	}
}

func TestWeekdayHoursTotal(t *testing.T) {
	days := WeekdayHours{Ma: 4, Di: 3, Wo: 0.5, Do: 0, Vr: 8}
	assert.InDelta(t, 15.5, days.Total(), 1e-9)
}

func TestDomainErrorIs(t *testing.T) {
	err := NewInvalidArgumentError("hours 25.00 outside [0, 24]")
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.False(t, errors.Is(err, ErrInvalidScope))
}

func TestValidHours(t *testing.T) {
	assert.True(t, ValidHours(0))
	assert.True(t, ValidHours(7.5))
	assert.True(t, ValidHours(24))
	assert.False(t, ValidHours(-0.5))
	assert.False(t, ValidHours(24.01))
}
