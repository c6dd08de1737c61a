package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHoursElapsed(t *testing.T) {
	t.Parallel()

	checkin := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		elapsed   time.Duration
		wantHours int
	}{
		{"zero duration charges minimum hour", 0, 1},
		{"ten minutes charges minimum hour", 10 * time.Minute, 1},
		{"fifty nine minutes", 59 * time.Minute, 1},
		{"exactly one hour", time.Hour, 1},
		{"ninety minutes rounds down", 90 * time.Minute, 1},
		{"exactly two hours", 2 * time.Hour, 2},
		{"one hundred twenty one minutes", 121 * time.Minute, 2},
		{"one hundred fifty minutes", 150 * time.Minute, 2},
		{"full day", 24 * time.Hour, 24},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := HoursElapsed(checkin, checkin.Add(tt.elapsed))
			require.Equal(t, tt.wantHours, got)
		})
	}
}

// Часы, прошедшие "назад" (now раньше checkin), поднимаются до минимума
func TestHoursElapsedClockSkew(t *testing.T) {
	t.Parallel()

	checkin := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	got := HoursElapsed(checkin, checkin.Add(-30*time.Minute))
	require.Equal(t, 1, got)
}

func TestTariffCharge(t *testing.T) {
	t.Parallel()

	tariff := Tariff{PricePerHour: 20}

	require.InDelta(t, 20.0, tariff.Charge(1), 1e-9)
	require.InDelta(t, 40.0, tariff.Charge(2), 1e-9)
	require.InDelta(t, 240.0, tariff.Charge(12), 1e-9)
}
