package booking

import (
	"errors"
	"time"

	bookingRepo "github.com/RajRabadiya018/CarringNanny/database/repository/booking"
	"github.com/RajRabadiya018/CarringNanny/models"
	"github.com/RajRabadiya018/CarringNanny/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Legal transitions: pending -> {confirmed, cancelled},
// confirmed -> {completed, cancelled}. A nanny decline is written as
// cancelled with the reason stored; the legacy "declined" status is never
// produced. Every transition is a single conditional update keyed on
// id + expected status, so two racing requests cannot both succeed.

// CancelBooking moves a pending or confirmed booking to cancelled. Only the
// owning parent may cancel.
func (s *DefaultBookingService) CancelBooking(bookingID, actorID, reason string) (*models.Booking, error) {
	b, err := s.mustGetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if b.ParentID != actorID {
		return nil, ForbiddenError{ActorID: actorID, Required: "owning parent"}
	}

	return s.applyTransition(bookingID, "cancel",
		[]string{models.StatusPending, models.StatusConfirmed},
		bson.M{
			"status":             models.StatusCancelled,
			"cancellationReason": reason,
		})
}

// ConfirmBooking moves a pending booking to confirmed. Only the booked nanny
// may confirm.
func (s *DefaultBookingService) ConfirmBooking(bookingID, actorID, message string) (*models.Booking, error) {
	b, err := s.mustGetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.requireBookedNanny(b, actorID); err != nil {
		return nil, err
	}

	return s.applyTransition(bookingID, "confirm",
		[]string{models.StatusPending},
		bson.M{
			"status":       models.StatusConfirmed,
			"nannyMessage": message,
		})
}

// DeclineBooking moves a pending booking to cancelled with a mandatory
// reason. The reason check runs before any state check.
func (s *DefaultBookingService) DeclineBooking(bookingID, actorID, reason string) (*models.Booking, error) {
	if reason == "" {
		return nil, ValidationError{Field: "reason", Rule: RuleRequired}
	}

	b, err := s.mustGetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.requireBookedNanny(b, actorID); err != nil {
		return nil, err
	}

	return s.applyTransition(bookingID, "decline",
		[]string{models.StatusPending},
		bson.M{
			"status":             models.StatusCancelled,
			"cancellationReason": reason,
		})
}

// CompleteBooking moves a confirmed booking to completed. Only the booked
// nanny may complete.
func (s *DefaultBookingService) CompleteBooking(bookingID, actorID, notes string) (*models.Booking, error) {
	b, err := s.mustGetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.requireBookedNanny(b, actorID); err != nil {
		return nil, err
	}

	return s.applyTransition(bookingID, "complete",
		[]string{models.StatusConfirmed},
		bson.M{
			"status":          models.StatusCompleted,
			"completionNotes": notes,
		})
}

// AddParentReview attaches a review to a completed booking. The conditional
// update keeps the status guard: a review lands only while the booking is
// completed.
func (s *DefaultBookingService) AddParentReview(bookingID, actorID string, rating int, comment string) (*models.Booking, error) {
	if rating < 1 || rating > 5 {
		return nil, ValidationError{Field: "rating", Rule: RuleOutOfRange}
	}

	b, err := s.mustGetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if b.ParentID != actorID {
		return nil, ForbiddenError{ActorID: actorID, Required: "owning parent"}
	}

	review := models.ParentReview{
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now(),
	}
	return s.applyTransition(bookingID, "review",
		[]string{models.StatusCompleted},
		bson.M{"parentReview": review})
}

// mustGetBooking loads a booking or reports NotFound.
func (s *DefaultBookingService) mustGetBooking(bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, NotFoundError{Entity: "booking", ID: bookingID}
	}
	return b, nil
}

// requireBookedNanny resolves the booking's nanny profile and checks that the
// actor owns it.
func (s *DefaultBookingService) requireBookedNanny(b *models.Booking, actorID string) error {
	nanny, err := s.NannyRepo.GetByID(b.NannyID)
	if err != nil {
		return err
	}
	if nanny == nil {
		return NotFoundError{Entity: "nanny", ID: b.NannyID}
	}
	if nanny.UserID != actorID {
		return ForbiddenError{ActorID: actorID, Required: "booked nanny"}
	}
	return nil
}

// applyTransition runs the conditional update and maps a guard failure to
// InvalidTransition with the freshest known status.
func (s *DefaultBookingService) applyTransition(bookingID, attempted string, allowed []string, set bson.M) (*models.Booking, error) {
	updated, err := s.Repo.UpdateStatusIf(bookingID, allowed, set)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotInExpectedState) {
			from := "unknown"
			if current, rerr := s.Repo.GetByID(bookingID); rerr == nil && current != nil {
				from = current.Status
			}
			return nil, InvalidTransitionError{From: from, Attempted: attempted}
		}
		return nil, err
	}

	utils.GetLogger().Info("booking transition applied",
		zap.String("bookingID", bookingID),
		zap.String("transition", attempted),
		zap.String("status", updated.Status),
	)
	return updated, nil
}
