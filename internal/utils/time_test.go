package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationMinutesCeil(t *testing.T) {
	entry := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		exit time.Time
		want int
	}{
		{"zero duration", entry, 0},
		{"exact minute", entry.Add(45 * time.Minute), 45},
		{"partial minute rounds up", entry.Add(61*time.Minute + 12*time.Second), 62},
		{"one second counts as one minute", entry.Add(1 * time.Second), 1},
		{"exit before entry clamps to zero", entry.Add(-10 * time.Minute), 0},
		{"multi day stay", entry.Add(25 * time.Hour), 1500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DurationMinutesCeil(entry, tt.exit))
		})
	}
}

func TestRoundAmount(t *testing.T) {
	assert.Equal(t, 20.0, RoundAmount(20.0))
	assert.Equal(t, 20.46, RoundAmount(20.455))
	assert.Equal(t, 0.0, RoundAmount(0))
}

func TestParseCurrencyAmount(t *testing.T) {
	amount, err := ParseCurrencyAmount("₹150.50")
	assert.NoError(t, err)
	assert.Equal(t, 150.50, amount)

	_, err = ParseCurrencyAmount("not-a-number")
	assert.Error(t, err)
}
