package booking

import (
	"testing"
	"time"

	"github.com/RajRabadiya018/CarringNanny/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingDerivesPrice(t *testing.T) {
	f := newFixture(20)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	f.freezeClock(now)

	b, err := f.svc.CreateBooking(parentID, validDraft(now))
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, b.Status)
	assert.Equal(t, models.PaymentPending, b.PaymentStatus)
	assert.Equal(t, 160.00, b.TotalPrice)
	assert.Equal(t, "Asha", b.NannyName, "name resolved from the profile owner")
	assert.Equal(t, b.StartTime, b.Date)
	assert.NotEmpty(t, b.ID)

	stored, err := f.bookings.GetByID(b.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, b.TotalPrice, stored.TotalPrice)
}

func TestCreateBookingFullTimeDiscount(t *testing.T) {
	f := newFixture(20)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	f.freezeClock(now)

	draft := validDraft(now)
	draft.ServiceType = models.ServiceFullTime
	b, err := f.svc.CreateBooking(parentID, draft)
	require.NoError(t, err)
	assert.Equal(t, 152.00, b.TotalPrice)
}

func TestCreateBookingDefaultsDayCount(t *testing.T) {
	f := newFixture(20)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	f.freezeClock(now)

	draft := validDraft(now)
	draft.NumberOfDays = 0
	b, err := f.svc.CreateBooking(parentID, draft)
	require.NoError(t, err)
	assert.Equal(t, 1, b.NumberOfDays)
	assert.Equal(t, 160.00, b.TotalPrice)
}

func TestCreateBookingClientPriceOverride(t *testing.T) {
	f := newFixture(20)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	f.freezeClock(now)

	draft := validDraft(now)
	draft.ClientPrice = 175.555
	b, err := f.svc.CreateBooking(parentID, draft)
	require.NoError(t, err)
	assert.Equal(t, 175.56, b.TotalPrice, "supplied total wins, rounded to cents")
}

func TestCreateBookingIgnoresNonPositiveClientPrice(t *testing.T) {
	f := newFixture(20)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	f.freezeClock(now)

	draft := validDraft(now)
	draft.ClientPrice = -10
	b, err := f.svc.CreateBooking(parentID, draft)
	require.NoError(t, err)
	assert.Equal(t, 160.00, b.TotalPrice)
}

func TestCreateBookingPricingUnavailable(t *testing.T) {
	f := newFixture(0)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	f.freezeClock(now)

	_, err := f.svc.CreateBooking(parentID, validDraft(now))
	var perr PricingUnavailableError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, nannyID, perr.NannyID)

	all, _ := f.bookings.GetAll()
	assert.Empty(t, all, "no booking is stored when pricing is unavailable")
}

func TestCreateBookingValidationFailureStoresNothing(t *testing.T) {
	f := newFixture(20)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	f.freezeClock(now)

	draft := validDraft(now)
	draft.Location = nil
	_, err := f.svc.CreateBooking(parentID, draft)
	var verr ValidationError
	require.ErrorAs(t, err, &verr)

	all, _ := f.bookings.GetAll()
	assert.Empty(t, all)
}

func TestCreateBookingKeepsSuppliedNannyName(t *testing.T) {
	f := newFixture(20)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	f.freezeClock(now)

	draft := validDraft(now)
	draft.NannyName = "Asha K."
	b, err := f.svc.CreateBooking(parentID, draft)
	require.NoError(t, err)
	assert.Equal(t, "Asha K.", b.NannyName)
}
