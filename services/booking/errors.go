package booking

import "fmt"

// ValidationError reports the first violated creation rule. Field names the
// offending input, Rule is a stable machine-checkable code.
type ValidationError struct {
	Field string
	Rule  string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed: field %q violates rule %q", e.Field, e.Rule)
}

// Validation rule codes.
const (
	RuleRequired    = "required"
	RuleInvalid     = "invalid"
	RuleTimeRange   = "end_before_start"
	RuleInPast      = "start_in_past"
	RuleOutOfRange  = "out_of_range"
	RuleWrongRole   = "role_not_parent"
	RuleUnknownType = "unknown_service_type"
)

// NotFoundError signals an absent booking, nanny or user.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Entity, e.ID)
}

// ForbiddenError signals that the acting identity does not own the action.
type ForbiddenError struct {
	ActorID  string
	Required string
}

func (e ForbiddenError) Error() string {
	return fmt.Sprintf("actor %s is not authorized: requires %s", e.ActorID, e.Required)
}

// InvalidTransitionError signals a status guard failure, including the
// lost-race case where a concurrent transition won.
type InvalidTransitionError struct {
	From      string
	Attempted string
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s a booking with status %q", e.Attempted, e.From)
}

// PricingUnavailableError signals that no price can be derived because the
// nanny's hourly rate is not positive.
type PricingUnavailableError struct {
	NannyID string
}

func (e PricingUnavailableError) Error() string {
	return fmt.Sprintf("pricing unavailable: nanny %s has no positive hourly rate", e.NannyID)
}
