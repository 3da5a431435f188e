package booking

import (
	bookingRepo "github.com/RajRabadiya018/CarringNanny/database/repository/booking"
	nannyRepo "github.com/RajRabadiya018/CarringNanny/database/repository/nanny"
	userRepo "github.com/RajRabadiya018/CarringNanny/database/repository/user"
	"github.com/RajRabadiya018/CarringNanny/models"
)

// BookingService covers the booking lifecycle: creation with mandatory price
// derivation, status transitions, participant queries and the administrative
// price audit.
type BookingService interface {
	// CreateBooking validates the draft, derives the price and stores a
	// pending booking on behalf of the parent.
	CreateBooking(parentID string, draft models.BookingDraft) (*models.Booking, error)

	// CancelBooking moves a pending or confirmed booking to cancelled.
	// Only the owning parent may cancel.
	CancelBooking(bookingID, actorID, reason string) (*models.Booking, error)
	// ConfirmBooking moves a pending booking to confirmed. Only the booked
	// nanny may confirm.
	ConfirmBooking(bookingID, actorID, message string) (*models.Booking, error)
	// DeclineBooking moves a pending booking to cancelled with a mandatory
	// reason. Only the booked nanny may decline.
	DeclineBooking(bookingID, actorID, reason string) (*models.Booking, error)
	// CompleteBooking moves a confirmed booking to completed. Only the
	// booked nanny may complete.
	CompleteBooking(bookingID, actorID, notes string) (*models.Booking, error)

	// GetBookingByID returns a booking to one of its participants.
	GetBookingByID(bookingID, actorID string) (*models.Booking, error)
	// GetParentBookings returns all bookings created by the acting parent.
	GetParentBookings(actorID string) ([]models.Booking, error)
	// GetNannyBookings returns all bookings addressed to the acting nanny.
	GetNannyBookings(actorID string) ([]models.Booking, error)

	// AddParentReview attaches a review to a completed booking.
	AddParentReview(bookingID, actorID string, rating int, comment string) (*models.Booking, error)

	// AuditBookingPrice re-derives the price of a booking with the same
	// calculation used at creation and rewrites it on drift. Reports
	// whether the stored value changed.
	AuditBookingPrice(bookingID string) (*models.Booking, bool, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	NannyRepo nannyRepo.NannyRepository
	UserRepo  userRepo.UserRepository

	validator *Validator
}

// NewDefaultBookingService wires a booking service over the given repositories.
func NewDefaultBookingService(repo bookingRepo.BookingRepository, nannies nannyRepo.NannyRepository, users userRepo.UserRepository) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:      repo,
		NannyRepo: nannies,
		UserRepo:  users,
		validator: &Validator{Nannies: nannies, Users: users},
	}
}
