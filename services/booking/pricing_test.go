package booking

import (
	"testing"
	"time"

	"github.com/RajRabadiya018/CarringNanny/models"

	"github.com/stretchr/testify/assert"
)

func TestComputePrice(t *testing.T) {
	day := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		rate        float64
		start, end  time.Time
		days        int
		serviceType string
		want        float64
	}{
		{
			name: "eight hours babysitting",
			rate: 20, start: day, end: day.Add(8 * time.Hour),
			days: 1, serviceType: models.ServiceBabysitting,
			want: 160.00,
		},
		{
			name: "eight hours part-time",
			rate: 20, start: day, end: day.Add(8 * time.Hour),
			days: 1, serviceType: models.ServicePartTime,
			want: 160.00,
		},
		{
			name: "full-time discount applies",
			rate: 20, start: day, end: day.Add(8 * time.Hour),
			days: 1, serviceType: models.ServiceFullTime,
			want: 152.00,
		},
		{
			name: "day count multiplies",
			rate: 20, start: day, end: day.Add(8 * time.Hour),
			days: 3, serviceType: models.ServiceBabysitting,
			want: 480.00,
		},
		{
			name: "day count with full-time discount",
			rate: 20, start: day, end: day.Add(8 * time.Hour),
			days: 3, serviceType: models.ServiceFullTime,
			want: 456.00,
		},
		{
			name: "fractional hours round to cents",
			rate: 17.5, start: day, end: day.Add(90 * time.Minute),
			days: 1, serviceType: models.ServiceBabysitting,
			want: 26.25,
		},
		{
			name: "zero rate yields zero",
			rate: 0, start: day, end: day.Add(8 * time.Hour),
			days: 1, serviceType: models.ServiceBabysitting,
			want: 0,
		},
		{
			name: "inverted interval yields zero",
			rate: 20, start: day.Add(8 * time.Hour), end: day,
			days: 1, serviceType: models.ServiceBabysitting,
			want: 0,
		},
		{
			name: "empty interval yields zero",
			rate: 20, start: day, end: day,
			days: 1, serviceType: models.ServiceBabysitting,
			want: 0,
		},
		{
			name: "zero start yields zero",
			rate: 20, start: time.Time{}, end: day.Add(8 * time.Hour),
			days: 1, serviceType: models.ServiceBabysitting,
			want: 0,
		},
		{
			name: "days below one yields zero",
			rate: 20, start: day, end: day.Add(8 * time.Hour),
			days: 0, serviceType: models.ServiceBabysitting,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputePrice(tt.rate, tt.start, tt.end, tt.days, tt.serviceType)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputePriceIsDeterministic(t *testing.T) {
	day := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	first := ComputePrice(22.75, day, day.Add(7*time.Hour), 2, models.ServiceFullTime)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ComputePrice(22.75, day, day.Add(7*time.Hour), 2, models.ServiceFullTime))
	}
}

func TestFinalizePrice(t *testing.T) {
	t.Run("positive derived price passes through", func(t *testing.T) {
		assert.Equal(t, 160.00, finalizePrice(160.00, 20))
	})
	t.Run("zero derived price falls back to hourly rate", func(t *testing.T) {
		assert.Equal(t, 20.00, finalizePrice(0, 20))
	})
	t.Run("no fallback without a positive rate", func(t *testing.T) {
		assert.Equal(t, 0.00, finalizePrice(0, 0))
	})
}
