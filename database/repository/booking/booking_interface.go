package bookingRepo

import (
	"errors"

	"github.com/RajRabadiya018/CarringNanny/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotInExpectedState is returned by UpdateStatusIf when the booking's
// current status no longer matches any of the allowed values. The caller must
// not retry: the precondition has genuinely changed.
var ErrNotInExpectedState = errors.New("booking not in expected state")

// BookingRepository defines methods for booking data access. Status changes
// go exclusively through UpdateStatusIf; there is no unconditional status
// write.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(b *models.Booking) error
	// GetByID retrieves a booking by its unique ID. Returns nil when absent.
	GetByID(id string) (*models.Booking, error)
	// GetByParent retrieves all bookings created by the given parent, most recent first.
	GetByParent(parentID string) ([]models.Booking, error)
	// GetByNanny retrieves all bookings addressed to the given nanny profile, most recent first.
	GetByNanny(nannyID string) ([]models.Booking, error)
	// GetAll retrieves all bookings, most recent first.
	GetAll() ([]models.Booking, error)
	// GetRecent retrieves the most recently created bookings.
	GetRecent(limit int64) ([]models.Booking, error)
	// Count counts bookings matching the filter.
	Count(filter bson.M) (int64, error)
	// UpdateStatusIf atomically applies the $set patch only while the
	// booking's status is one of allowedCurrent, and returns the updated
	// document. Returns ErrNotInExpectedState when the guard fails.
	UpdateStatusIf(id string, allowedCurrent []string, set bson.M) (*models.Booking, error)
	// SetTotalPrice rewrites the derived price of a booking.
	SetTotalPrice(id string, price float64) error
	// DeleteByParent removes all bookings created by the given parent.
	DeleteByParent(parentID string) (int64, error)
	// DeleteByNanny removes all bookings addressed to the given nanny profile.
	DeleteByNanny(nannyID string) (int64, error)
}
