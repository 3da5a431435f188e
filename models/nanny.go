package models

import "time"

// Nanny is the service profile owned by a user with role "nanny".
// HourlyRate is the pricing input for every booking made against the profile.
type Nanny struct {
	ID              string    `bson:"id" json:"id"`
	UserID          string    `bson:"userId" json:"userId"`
	Bio             string    `bson:"bio,omitempty" json:"bio,omitempty"`
	HourlyRate      float64   `bson:"hourlyRate" json:"hourlyRate"`
	ExperienceYears int       `bson:"experienceYears,omitempty" json:"experienceYears,omitempty"`
	Skills          []string  `bson:"skills,omitempty" json:"skills,omitempty"`
	City            string    `bson:"city,omitempty" json:"city,omitempty"`
	Availability    []string  `bson:"availability,omitempty" json:"availability,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}
