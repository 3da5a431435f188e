package user

import (
	"errors"

	userRepo "github.com/RajRabadiya018/CarringNanny/database/repository/user"
	"github.com/RajRabadiya018/CarringNanny/models"
)

// ErrEmailTaken signals a registration attempt with an email already in use.
var ErrEmailTaken = errors.New("email already in use")

// ErrInvalidCredentials signals a failed login without revealing which part
// was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthResponse contains the user's ID, token, and additional details.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UserService handles accounts: registration, login, profile management and
// the back-office admin seed.
type UserService interface {
	Register(u models.User) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	GetUserByID(userID string) (*models.User, error)
	UpdateProfile(userID string, update models.User) (*models.User, error)
	GetAllUsers() ([]models.User, error)
	EnsureAdminAccount(name, email, password string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
