package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/RajRabadiya018/CarringNanny/models"
	"github.com/RajRabadiya018/CarringNanny/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

// Register creates a parent or nanny account and signs the new user in.
// Admin accounts are only seeded at startup, never self-registered.
func (s *DefaultUserService) Register(u models.User) (*AuthResponse, error) {
	logger := utils.GetLogger()

	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.Name == "" || u.Email == "" || u.Password == "" {
		return nil, fmt.Errorf("name, email and password are required")
	}
	if u.Role != models.RoleParent && u.Role != models.RoleNanny {
		return nil, fmt.Errorf("role must be %q or %q", models.RoleParent, models.RoleNanny)
	}

	existing, err := s.Repo.GetByEmail(u.Email)
	if err != nil {
		logger.Error("Register: failed to check email", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u.ID = uuid.New().String()
	u.Password = ""
	u.PasswordHash = string(hash)

	if err := s.Repo.Create(&u); err != nil {
		logger.Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.issueToken(&u)
}

// Authenticate verifies credentials and issues a fresh token.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	logger := utils.GetLogger()

	userRec, err := s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		logger.Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(userRec)
}

// issueToken generates a JWT, persists its hash on the user record and primes
// the auth cache so the middleware can skip the database on the next request.
func (s *DefaultUserService) issueToken(u *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(u.ID, u.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateSetDocument(u.ID, bson.M{"tokenHash": tokenHash}); err != nil {
		return nil, fmt.Errorf("failed to store token hash: %w", err)
	}

	ctx := context.Background()
	cacheKey := utils.AuthCachePrefix + u.ID
	if err := utils.GetAuthCacheClient().Set(ctx, cacheKey, tokenHash, time.Hour).Err(); err != nil {
		utils.GetLogger().Warn("issueToken: failed to prime auth cache", zap.Error(err))
	}

	return &AuthResponse{
		ID:    u.ID,
		Token: token,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}, nil
}

// EnsureAdminAccount creates the back-office account at startup when it does
// not exist yet. A blank email disables seeding.
func (s *DefaultUserService) EnsureAdminAccount(name, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	existing, err := s.Repo.GetByEmail(strings.ToLower(email))
	if err != nil {
		return fmt.Errorf("failed to look up admin account: %w", err)
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        strings.ToLower(email),
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := s.Repo.Create(&admin); err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}

	utils.GetLogger().Info("admin account seeded", zap.String("email", admin.Email))
	return nil
}
