package userRepo

import (
	"github.com/RajRabadiya018/CarringNanny/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID. Returns nil when absent.
	GetByID(id string) (*models.User, error)
	// GetByIDWithProjection retrieves a user by its unique ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
	// GetByEmail retrieves a user by its email address. Returns nil when absent.
	GetByEmail(email string) (*models.User, error)
	// GetAll retrieves all users, most recent first.
	GetAll() ([]models.User, error)
	// GetRecent retrieves the most recently created users.
	GetRecent(limit int64) ([]models.User, error)
	// Count counts users matching the filter.
	Count(filter bson.M) (int64, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// UpdateSetDocument applies a partial $set update to a user record.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// Delete removes a user record by its ID.
	Delete(id string) error
}
