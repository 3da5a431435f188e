package booking

import (
	"math"

	"github.com/RajRabadiya018/CarringNanny/models"
	"github.com/RajRabadiya018/CarringNanny/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking validates the draft, derives the price and stores a pending
// booking. Price derivation is a mandatory step: no code path reaches the
// store without going through ComputePrice and the fallback policy.
func (s *DefaultBookingService) CreateBooking(parentID string, draft models.BookingDraft) (*models.Booking, error) {
	logger := utils.GetLogger()

	nanny, err := s.validator.ValidateDraft(parentID, &draft)
	if err != nil {
		return nil, err
	}

	if nanny.HourlyRate <= 0 {
		// Never store a zero price silently; surface the condition instead.
		return nil, PricingUnavailableError{NannyID: nanny.ID}
	}

	days := draft.NumberOfDays
	if days < 1 {
		days = 1
	}

	price := ComputePrice(nanny.HourlyRate, draft.StartTime, draft.EndTime, days, draft.ServiceType)
	if draft.ClientPrice > 0 && !math.IsNaN(draft.ClientPrice) {
		price = round2(draft.ClientPrice)
	}
	price = finalizePrice(price, nanny.HourlyRate)

	nannyName := draft.NannyName
	if nannyName == "" {
		if owner, err := s.UserRepo.GetByID(nanny.UserID); err == nil && owner != nil {
			nannyName = owner.Name
		}
	}
	if nannyName == "" {
		nannyName = "Nanny"
	}

	b := &models.Booking{
		ID:               uuid.New().String(),
		ParentID:         parentID,
		NannyID:          nanny.ID,
		NannyName:        nannyName,
		Date:             draft.StartTime,
		StartTime:        draft.StartTime,
		EndTime:          draft.EndTime,
		Status:           models.StatusPending,
		TotalPrice:       price,
		ServiceType:      draft.ServiceType,
		NumberOfDays:     days,
		NumberOfChildren: draft.NumberOfChildren,
		ChildrenAges:     draft.ChildrenAges,
		SpecialRequests:  draft.SpecialRequests,
		Location:         *draft.Location,
		PaymentStatus:    models.PaymentPending,
	}

	if err := s.Repo.Create(b); err != nil {
		logger.Error("CreateBooking: failed to store booking", zap.Error(err))
		return nil, err
	}

	logger.Info("CreateBooking: booking created",
		zap.String("bookingID", b.ID),
		zap.String("parentID", parentID),
		zap.String("nannyID", nanny.ID),
		zap.Float64("totalPrice", b.TotalPrice),
	)
	return b, nil
}
