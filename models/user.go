package models

import "time"

// User roles.
const (
	RoleParent = "parent"
	RoleNanny  = "nanny"
	RoleAdmin  = "admin"
)

// User represents a platform account. Parents book nannies, nanny accounts
// own a Nanny profile, admins run the back-office.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Password     string    `bson:"-" json:"password,omitempty"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Role         string    `bson:"role" json:"role"`
	ProfileImage string    `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// PublicUser is the sensitive-field-free view returned by listing endpoints.
type PublicUser struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Role         string    `json:"role"`
	ProfileImage string    `json:"profileImage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Public strips credentials and token material.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Phone:        u.Phone,
		Role:         u.Role,
		ProfileImage: u.ProfileImage,
		CreatedAt:    u.CreatedAt,
	}
}
