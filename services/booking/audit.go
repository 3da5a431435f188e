package booking

import (
	"math"

	"github.com/RajRabadiya018/CarringNanny/models"
	"github.com/RajRabadiya018/CarringNanny/utils"

	"go.uber.org/zap"
)

// AuditBookingPrice re-derives the price of a stored booking using the exact
// calculation performed at creation and rewrites the stored value when it
// drifted. It replaces the ad-hoc repair scripts of the previous system: the
// same pure function, the same fallback, run idempotently.
func (s *DefaultBookingService) AuditBookingPrice(bookingID string) (*models.Booking, bool, error) {
	b, err := s.mustGetBooking(bookingID)
	if err != nil {
		return nil, false, err
	}

	nanny, err := s.NannyRepo.GetByID(b.NannyID)
	if err != nil {
		return nil, false, err
	}
	if nanny == nil {
		return nil, false, NotFoundError{Entity: "nanny", ID: b.NannyID}
	}
	if nanny.HourlyRate <= 0 {
		return nil, false, PricingUnavailableError{NannyID: nanny.ID}
	}

	expected := finalizePrice(
		ComputePrice(nanny.HourlyRate, b.StartTime, b.EndTime, b.NumberOfDays, b.ServiceType),
		nanny.HourlyRate,
	)

	if math.Abs(expected-b.TotalPrice) < 0.005 {
		return b, false, nil
	}

	if err := s.Repo.SetTotalPrice(b.ID, expected); err != nil {
		return nil, false, err
	}

	utils.GetLogger().Warn("price audit corrected stored total",
		zap.String("bookingID", b.ID),
		zap.Float64("stored", b.TotalPrice),
		zap.Float64("derived", expected),
	)
	b.TotalPrice = expected
	return b, true, nil
}
