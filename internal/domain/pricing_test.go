package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsPeakHour(t *testing.T) {
	peakHours := map[int]bool{
		6: true, 7: true, 8: true, 9: true,
		18: true, 19: true, 20: true, 21: true,
	}

	for hour := 0; hour < 24; hour++ {
		assert.Equal(t, peakHours[hour], IsPeakHour(hour), "hour %d", hour)
	}
}

func TestPeakPrice(t *testing.T) {
	tests := []struct {
		base     float64
		expected float64
	}{
		{450, 540},
		{500, 600},
		{333, 400},  // 399.6 округляется до 400
		{100, 120},
		{1, 1},      // 1.2 округляется до 1
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, PeakPrice(tt.base), "base %v", tt.base)
	}
}

func TestIsWeekend(t *testing.T) {
	// 2025-11-10 - понедельник
	monday := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)

	expected := []bool{false, false, false, false, false, true, true}
	for i, want := range expected {
		day := monday.AddDate(0, 0, i)
		assert.Equal(t, want, IsWeekend(day), "day %s", day.Weekday())
	}
}
