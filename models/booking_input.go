package models

import "time"

// BookingDraft is the typed request body for creating a booking. Unknown
// fields in the payload are ignored; everything the validator needs is named
// here. ClientPrice is an optional caller-supplied total that, when positive,
// overrides the derived price.
type BookingDraft struct {
	NannyID          string    `json:"nannyId"`
	NannyName        string    `json:"nannyName,omitempty"`
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	NumberOfDays     int       `json:"numberOfDays,omitempty"`
	NumberOfChildren int       `json:"numberOfChildren"`
	ChildrenAges     []int     `json:"childrenAges"`
	ServiceType      string    `json:"serviceType"`
	SpecialRequests  string    `json:"specialRequests,omitempty"`
	Location         *Location `json:"location"`
	ClientPrice      float64   `json:"totalPrice,omitempty"`
}
