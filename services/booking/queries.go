package booking

import (
	"github.com/RajRabadiya018/CarringNanny/models"
)

// GetBookingByID returns a booking to one of its participants: the owning
// parent or the booked nanny's account.
func (s *DefaultBookingService) GetBookingByID(bookingID, actorID string) (*models.Booking, error) {
	b, err := s.mustGetBooking(bookingID)
	if err != nil {
		return nil, err
	}

	if b.ParentID == actorID {
		return b, nil
	}
	nanny, err := s.NannyRepo.GetByID(b.NannyID)
	if err != nil {
		return nil, err
	}
	if nanny != nil && nanny.UserID == actorID {
		return b, nil
	}
	return nil, ForbiddenError{ActorID: actorID, Required: "booking participant"}
}

// GetParentBookings returns all bookings created by the acting parent.
func (s *DefaultBookingService) GetParentBookings(actorID string) ([]models.Booking, error) {
	actor, err := s.UserRepo.GetByID(actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, NotFoundError{Entity: "user", ID: actorID}
	}
	if actor.Role != models.RoleParent {
		return nil, ForbiddenError{ActorID: actorID, Required: "role parent"}
	}
	return s.Repo.GetByParent(actorID)
}

// GetNannyBookings returns all bookings addressed to the acting nanny's
// profile.
func (s *DefaultBookingService) GetNannyBookings(actorID string) ([]models.Booking, error) {
	nanny, err := s.NannyRepo.GetByUserID(actorID)
	if err != nil {
		return nil, err
	}
	if nanny == nil {
		return nil, NotFoundError{Entity: "nanny profile", ID: actorID}
	}
	return s.Repo.GetByNanny(nanny.ID)
}
