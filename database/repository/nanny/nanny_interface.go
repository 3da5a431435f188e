package nannyRepo

import (
	"github.com/RajRabadiya018/CarringNanny/models"

	"go.mongodb.org/mongo-driver/bson"
)

// NannyRepository defines methods for nanny profile data access.
type NannyRepository interface {
	// GetByID retrieves a nanny profile by its unique ID. Returns nil when absent.
	GetByID(id string) (*models.Nanny, error)
	// GetByUserID retrieves the profile owned by the given user. Returns nil when absent.
	GetByUserID(userID string) (*models.Nanny, error)
	// GetAll retrieves all nanny profiles, most recent first.
	GetAll() ([]models.Nanny, error)
	// Count counts profiles matching the filter.
	Count(filter bson.M) (int64, error)
	// Create inserts a new nanny profile.
	Create(n *models.Nanny) error
	// Update modifies an existing nanny profile.
	Update(n *models.Nanny) error
	// Delete removes a nanny profile by its ID.
	Delete(id string) error
	// DeleteByUserID removes the profile owned by the given user, if any.
	DeleteByUserID(userID string) error
}
