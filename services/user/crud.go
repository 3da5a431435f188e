package user

import (
	"fmt"
	"time"

	"github.com/RajRabadiya018/CarringNanny/models"
	"github.com/RajRabadiya018/CarringNanny/utils"

	"go.uber.org/zap"
)

// GetUserByID fetches a single user.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user with id %s not found", userID)
	}
	return u, nil
}

// UpdateProfile updates non-empty profile fields using a partial update.
// Role, credentials and token material are not updatable here.
func (s *DefaultUserService) UpdateProfile(userID string, update models.User) (*models.User, error) {
	logger := utils.GetLogger()

	updateFields := map[string]any{
		"updatedAt": time.Now(),
	}
	if update.Name != "" {
		updateFields["name"] = update.Name
	}
	if update.Phone != "" {
		updateFields["phone"] = update.Phone
	}
	if update.ProfileImage != "" {
		updateFields["profileImage"] = update.ProfileImage
	}

	if len(updateFields) == 1 {
		logger.Warn("UpdateProfile: no updatable fields provided", zap.String("userID", userID))
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateSetDocument(userID, updateFields); err != nil {
		logger.Error("UpdateProfile: failed to update user", zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.GetUserByID(userID)
}

// GetAllUsers returns every account, most recent first.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}
