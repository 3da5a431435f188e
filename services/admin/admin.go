package admin

import (
	"fmt"

	bookingRepo "github.com/RajRabadiya018/CarringNanny/database/repository/booking"
	nannyRepo "github.com/RajRabadiya018/CarringNanny/database/repository/nanny"
	userRepo "github.com/RajRabadiya018/CarringNanny/database/repository/user"
	"github.com/RajRabadiya018/CarringNanny/models"
	"github.com/RajRabadiya018/CarringNanny/utils"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// AdminService covers the back-office: account and profile removal with
// booking cascades, full listings, dashboard stats and price audits.
type AdminService interface {
	GetAllUsers() ([]models.PublicUser, error)
	DeleteUser(userID string) error
	GetAllNannies() ([]models.Nanny, error)
	DeleteNanny(nannyID string) error
	GetAllBookings() ([]models.Booking, error)
	GetStats() (*DashboardStats, error)
	EnqueuePriceAudit(bookingID string) error
}

// UserStats breaks accounts down by role.
type UserStats struct {
	Total   int64 `json:"total"`
	Parents int64 `json:"parents"`
	Nannies int64 `json:"nannies"`
	Admins  int64 `json:"admins"`
}

// DashboardStats is the admin dashboard payload.
type DashboardStats struct {
	UserStats      UserStats           `json:"userStats"`
	NannyProfiles  int64               `json:"nannyProfiles"`
	Bookings       int64               `json:"bookings"`
	RecentUsers    []models.PublicUser `json:"recentUsers"`
	RecentBookings []models.Booking    `json:"recentBookings"`
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Users    userRepo.UserRepository
	Nannies  nannyRepo.NannyRepository
	Bookings bookingRepo.BookingRepository
	Tasks    *asynq.Client

	// NewPricingAuditTask builds the queue task; injected so the queue
	// wiring stays in one place.
	NewPricingAuditTask func(bookingID string) (*asynq.Task, error)
}

// GetAllUsers lists every account without credential material.
func (s *DefaultAdminService) GetAllUsers() ([]models.PublicUser, error) {
	users, err := s.Users.GetAll()
	if err != nil {
		return nil, err
	}
	public := make([]models.PublicUser, 0, len(users))
	for i := range users {
		public = append(public, users[i].Public())
	}
	return public, nil
}

// DeleteUser removes an account. Bookings are never deleted directly by their
// participants; this cascade is the only path that removes them.
func (s *DefaultAdminService) DeleteUser(userID string) error {
	logger := utils.GetLogger()

	u, err := s.Users.GetByID(userID)
	if err != nil {
		return err
	}
	if u == nil {
		return fmt.Errorf("user with id %s not found", userID)
	}

	switch u.Role {
	case models.RoleParent:
		removed, err := s.Bookings.DeleteByParent(userID)
		if err != nil {
			return fmt.Errorf("failed to cascade parent bookings: %w", err)
		}
		logger.Info("cascaded parent bookings", zap.String("userID", userID), zap.Int64("removed", removed))
	case models.RoleNanny:
		profile, err := s.Nannies.GetByUserID(userID)
		if err != nil {
			return err
		}
		if profile != nil {
			removed, err := s.Bookings.DeleteByNanny(profile.ID)
			if err != nil {
				return fmt.Errorf("failed to cascade nanny bookings: %w", err)
			}
			logger.Info("cascaded nanny bookings", zap.String("nannyID", profile.ID), zap.Int64("removed", removed))
		}
		if err := s.Nannies.DeleteByUserID(userID); err != nil {
			return err
		}
	}

	return s.Users.Delete(userID)
}

// GetAllNannies lists every nanny profile.
func (s *DefaultAdminService) GetAllNannies() ([]models.Nanny, error) {
	return s.Nannies.GetAll()
}

// DeleteNanny removes a nanny profile (not the owning account) and cascades
// its bookings.
func (s *DefaultAdminService) DeleteNanny(nannyID string) error {
	profile, err := s.Nannies.GetByID(nannyID)
	if err != nil {
		return err
	}
	if profile == nil {
		return fmt.Errorf("nanny with id %s not found", nannyID)
	}

	removed, err := s.Bookings.DeleteByNanny(profile.ID)
	if err != nil {
		return fmt.Errorf("failed to cascade nanny bookings: %w", err)
	}
	utils.GetLogger().Info("cascaded nanny bookings", zap.String("nannyID", profile.ID), zap.Int64("removed", removed))

	return s.Nannies.Delete(nannyID)
}

// GetAllBookings lists every booking, most recent first.
func (s *DefaultAdminService) GetAllBookings() ([]models.Booking, error) {
	return s.Bookings.GetAll()
}

// GetStats assembles the dashboard counters and recent activity.
func (s *DefaultAdminService) GetStats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.UserStats.Total, err = s.Users.Count(bson.M{}); err != nil {
		return nil, err
	}
	if stats.UserStats.Parents, err = s.Users.Count(bson.M{"role": models.RoleParent}); err != nil {
		return nil, err
	}
	if stats.UserStats.Nannies, err = s.Users.Count(bson.M{"role": models.RoleNanny}); err != nil {
		return nil, err
	}
	if stats.UserStats.Admins, err = s.Users.Count(bson.M{"role": models.RoleAdmin}); err != nil {
		return nil, err
	}
	if stats.NannyProfiles, err = s.Nannies.Count(bson.M{}); err != nil {
		return nil, err
	}
	if stats.Bookings, err = s.Bookings.Count(bson.M{}); err != nil {
		return nil, err
	}

	recentUsers, err := s.Users.GetRecent(5)
	if err != nil {
		return nil, err
	}
	stats.RecentUsers = make([]models.PublicUser, 0, len(recentUsers))
	for i := range recentUsers {
		stats.RecentUsers = append(stats.RecentUsers, recentUsers[i].Public())
	}

	if stats.RecentBookings, err = s.Bookings.GetRecent(5); err != nil {
		return nil, err
	}
	return stats, nil
}

// EnqueuePriceAudit queues a background re-derivation of one booking's price.
func (s *DefaultAdminService) EnqueuePriceAudit(bookingID string) error {
	b, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return err
	}
	if b == nil {
		return fmt.Errorf("booking with id %s not found", bookingID)
	}

	task, err := s.NewPricingAuditTask(bookingID)
	if err != nil {
		return fmt.Errorf("failed to build audit task: %w", err)
	}
	if _, err := s.Tasks.Enqueue(task); err != nil {
		return fmt.Errorf("failed to enqueue audit task: %w", err)
	}
	return nil
}
