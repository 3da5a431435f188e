package models

import "time"

// Booking statuses. StatusDeclined survives only as a legacy value on old
// documents; a declined booking is written as cancelled with a reason.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusDeclined  = "declined"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Service types. Full-time bookings receive a 5% discount.
const (
	ServicePartTime    = "part-time"
	ServiceFullTime    = "full-time"
	ServiceBabysitting = "babysitting"
)

// Payment statuses carried on the booking record. Payment processing itself
// happens outside this service.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentRefunded  = "refunded"
)

// Location is the address a booking takes place at.
type Location struct {
	Address string `bson:"address,omitempty" json:"address,omitempty"`
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	State   string `bson:"state,omitempty" json:"state,omitempty"`
	ZipCode string `bson:"zipCode,omitempty" json:"zipCode,omitempty"`
}

// ParentReview is attached by the owning parent after completion.
type ParentReview struct {
	Rating    int       `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Booking is a reservation of a nanny's time by a parent. TotalPrice is
// derived from the nanny's hourly rate at creation time and only rewritten
// through the same calculation during administrative audits.
type Booking struct {
	ID                 string        `bson:"id" json:"id"`
	ParentID           string        `bson:"parentId" json:"parentId"`
	NannyID            string        `bson:"nannyId" json:"nannyId"`
	NannyName          string        `bson:"nannyName" json:"nannyName"`
	Date               time.Time     `bson:"date" json:"date"`
	StartTime          time.Time     `bson:"startTime" json:"startTime"`
	EndTime            time.Time     `bson:"endTime" json:"endTime"`
	Status             string        `bson:"status" json:"status"`
	TotalPrice         float64       `bson:"totalPrice" json:"totalPrice"`
	ServiceType        string        `bson:"serviceType" json:"serviceType"`
	NumberOfDays       int           `bson:"numberOfDays" json:"numberOfDays"`
	NumberOfChildren   int           `bson:"numberOfChildren" json:"numberOfChildren"`
	ChildrenAges       []int         `bson:"childrenAges" json:"childrenAges"`
	SpecialRequests    string        `bson:"specialRequests,omitempty" json:"specialRequests,omitempty"`
	Location           Location      `bson:"location" json:"location"`
	PaymentStatus      string        `bson:"paymentStatus" json:"paymentStatus"`
	CancellationReason string        `bson:"cancellationReason,omitempty" json:"cancellationReason,omitempty"`
	NannyMessage       string        `bson:"nannyMessage,omitempty" json:"nannyMessage,omitempty"`
	CompletionNotes    string        `bson:"completionNotes,omitempty" json:"completionNotes,omitempty"`
	ParentReview       *ParentReview `bson:"parentReview,omitempty" json:"parentReview,omitempty"`
	CreatedAt          time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// ValidServiceType reports whether s is a recognized service type.
func ValidServiceType(s string) bool {
	switch s {
	case ServicePartTime, ServiceFullTime, ServiceBabysitting:
		return true
	}
	return false
}
