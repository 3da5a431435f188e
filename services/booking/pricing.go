package booking

import (
	"math"
	"time"

	"github.com/RajRabadiya018/CarringNanny/models"
)

// fullTimeDiscount is the multiplier applied to full-time bookings.
const fullTimeDiscount = 0.95

// ComputePrice derives the total price of a booking from the nanny's hourly
// rate, the daily time interval, the day count and the service type.
//
//	price = round2(hourlyRate × hours × days × (0.95 if full-time else 1))
//
// The duration is taken as the millisecond difference between end and start
// divided by 3,600,000. It returns 0 ("uncomputable") when the interval is
// empty or inverted, either timestamp is zero, or days < 1. Rounding is
// half-away-from-zero to 2 decimal places. The function is pure: the same
// inputs always yield the same output, whether invoked at creation time or
// during a later audit.
func ComputePrice(hourlyRate float64, start, end time.Time, days int, serviceType string) float64 {
	if start.IsZero() || end.IsZero() || days < 1 || hourlyRate < 0 {
		return 0
	}
	durationHours := float64(end.Sub(start).Milliseconds()) / (1000 * 60 * 60)
	if durationHours <= 0 {
		return 0
	}

	price := hourlyRate * durationHours * float64(days)
	if serviceType == models.ServiceFullTime {
		price *= fullTimeDiscount
	}
	return round2(price)
}

// round2 rounds half away from zero to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// finalizePrice applies the fallback policy: a zero or NaN derived price is
// replaced by the hourly rate itself whenever a positive rate is known, so a
// booking is never stored at price 0 alongside a positive rate.
func finalizePrice(derived, hourlyRate float64) float64 {
	if (derived <= 0 || math.IsNaN(derived)) && hourlyRate > 0 {
		return round2(hourlyRate)
	}
	return derived
}
