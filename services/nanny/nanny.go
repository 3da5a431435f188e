package nanny

import (
	"errors"
	"fmt"

	nannyRepo "github.com/RajRabadiya018/CarringNanny/database/repository/nanny"
	userRepo "github.com/RajRabadiya018/CarringNanny/database/repository/user"
	"github.com/RajRabadiya018/CarringNanny/models"
	"github.com/RajRabadiya018/CarringNanny/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrProfileExists signals a second profile creation for the same account.
var ErrProfileExists = errors.New("nanny profile already exists for this account")

// ErrNotNanny signals a profile operation by an account without the nanny role.
var ErrNotNanny = errors.New("account does not have the nanny role")

// NannyService manages nanny profiles. The hourly rate carried by a profile
// is the pricing input for every booking made against it.
type NannyService interface {
	CreateProfile(userID string, n models.Nanny) (*models.Nanny, error)
	UpdateProfile(userID string, n models.Nanny) (*models.Nanny, error)
	GetByID(id string) (*models.Nanny, error)
	GetByUserID(userID string) (*models.Nanny, error)
	GetAllNannies() ([]models.Nanny, error)
}

// DefaultNannyService is the production implementation.
type DefaultNannyService struct {
	Repo  nannyRepo.NannyRepository
	Users userRepo.UserRepository
}

// CreateProfile creates the service profile for a nanny account.
func (s *DefaultNannyService) CreateProfile(userID string, n models.Nanny) (*models.Nanny, error) {
	owner, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, fmt.Errorf("user with id %s not found", userID)
	}
	if owner.Role != models.RoleNanny {
		return nil, ErrNotNanny
	}

	existing, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrProfileExists
	}

	if n.HourlyRate <= 0 {
		return nil, fmt.Errorf("hourly rate must be positive")
	}

	n.ID = uuid.New().String()
	n.UserID = userID
	if err := s.Repo.Create(&n); err != nil {
		utils.GetLogger().Error("CreateProfile: failed to store nanny profile", zap.Error(err))
		return nil, err
	}
	return &n, nil
}

// UpdateProfile rewrites the profile owned by the acting account.
func (s *DefaultNannyService) UpdateProfile(userID string, n models.Nanny) (*models.Nanny, error) {
	existing, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("nanny profile not found for user %s", userID)
	}

	if n.HourlyRate <= 0 {
		return nil, fmt.Errorf("hourly rate must be positive")
	}

	existing.Bio = n.Bio
	existing.HourlyRate = n.HourlyRate
	existing.ExperienceYears = n.ExperienceYears
	existing.Skills = n.Skills
	existing.City = n.City
	existing.Availability = n.Availability

	if err := s.Repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// GetByID fetches one profile.
func (s *DefaultNannyService) GetByID(id string) (*models.Nanny, error) {
	n, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, fmt.Errorf("nanny with id %s not found", id)
	}
	return n, nil
}

// GetByUserID fetches the profile owned by an account.
func (s *DefaultNannyService) GetByUserID(userID string) (*models.Nanny, error) {
	n, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, fmt.Errorf("nanny profile not found for user %s", userID)
	}
	return n, nil
}

// GetAllNannies lists every profile, most recent first.
func (s *DefaultNannyService) GetAllNannies() ([]models.Nanny, error) {
	return s.Repo.GetAll()
}
