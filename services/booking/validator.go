package booking

import (
	"time"

	nannyRepo "github.com/RajRabadiya018/CarringNanny/database/repository/nanny"
	userRepo "github.com/RajRabadiya018/CarringNanny/database/repository/user"
	"github.com/RajRabadiya018/CarringNanny/models"
)

// Validator checks the preconditions of booking creation. Rules are evaluated
// in a fixed order and the first violation wins:
//
//  1. presence and ranges of nannyId, startTime, endTime, numberOfChildren,
//     childrenAges, location, serviceType, numberOfDays
//  2. serviceType is one of part-time, full-time, babysitting
//  3. the referenced nanny exists
//  4. startTime < endTime
//  5. startTime is not in the past
//  6. the requesting identity has role parent
type Validator struct {
	Nannies nannyRepo.NannyRepository
	Users   userRepo.UserRepository

	// Now is the clock used for the past-start check; defaults to time.Now.
	Now func() time.Time
}

func (v *Validator) now() time.Time {
	if v.Now != nil {
		return v.Now()
	}
	return time.Now()
}

// ValidateDraft runs all creation rules and returns the referenced nanny
// profile on success, or the first violation as a typed error.
func (v *Validator) ValidateDraft(parentID string, draft *models.BookingDraft) (*models.Nanny, error) {
	if err := checkStructure(draft); err != nil {
		return nil, err
	}

	if !models.ValidServiceType(draft.ServiceType) {
		return nil, ValidationError{Field: "serviceType", Rule: RuleUnknownType}
	}

	nanny, err := v.Nannies.GetByID(draft.NannyID)
	if err != nil {
		return nil, err
	}
	if nanny == nil {
		return nil, NotFoundError{Entity: "nanny", ID: draft.NannyID}
	}

	if !draft.StartTime.Before(draft.EndTime) {
		return nil, ValidationError{Field: "endTime", Rule: RuleTimeRange}
	}
	if draft.StartTime.Before(v.now()) {
		return nil, ValidationError{Field: "startTime", Rule: RuleInPast}
	}

	actor, err := v.Users.GetByID(parentID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, NotFoundError{Entity: "user", ID: parentID}
	}
	if actor.Role != models.RoleParent {
		return nil, ValidationError{Field: "role", Rule: RuleWrongRole}
	}

	return nanny, nil
}

// checkStructure covers presence and numeric ranges. Field order matches the
// documented precedence.
func checkStructure(draft *models.BookingDraft) error {
	if draft.NannyID == "" {
		return ValidationError{Field: "nannyId", Rule: RuleRequired}
	}
	if draft.StartTime.IsZero() {
		return ValidationError{Field: "startTime", Rule: RuleRequired}
	}
	if draft.EndTime.IsZero() {
		return ValidationError{Field: "endTime", Rule: RuleRequired}
	}
	if draft.NumberOfChildren == 0 {
		return ValidationError{Field: "numberOfChildren", Rule: RuleRequired}
	}
	if draft.NumberOfChildren < 1 {
		return ValidationError{Field: "numberOfChildren", Rule: RuleOutOfRange}
	}
	if len(draft.ChildrenAges) == 0 {
		return ValidationError{Field: "childrenAges", Rule: RuleRequired}
	}
	for _, age := range draft.ChildrenAges {
		if age < 0 {
			return ValidationError{Field: "childrenAges", Rule: RuleOutOfRange}
		}
	}
	if draft.Location == nil {
		return ValidationError{Field: "location", Rule: RuleRequired}
	}
	if draft.ServiceType == "" {
		return ValidationError{Field: "serviceType", Rule: RuleRequired}
	}
	if draft.NumberOfDays < 0 {
		return ValidationError{Field: "numberOfDays", Rule: RuleOutOfRange}
	}
	return nil
}
