package auth

import (
	"context"
	"fmt"
	"time"

	userRepo "github.com/pwnz15/backend-sld/database/repository/user"
	"github.com/pwnz15/backend-sld/models"
	"github.com/pwnz15/backend-sld/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenDuration is the lifetime of issued auth tokens.
const tokenDuration = 24 * time.Hour

// RegisterInput is the payload for creating a back-office account.
type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// LoginInput is the payload for authenticating.
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the authenticated user and their signed token.
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// AuthService handles account registration and token issuance.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResponse, error)
	Login(ctx context.Context, input LoginInput) (*AuthResponse, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	Repo userRepo.UserRepository
}

// Register creates a new account. Permissions are derived from the role, and
// the username must be unique.
func (s *DefaultAuthService) Register(ctx context.Context, input RegisterInput) (*AuthResponse, error) {
	logger := utils.GetLogger()

	permissions, ok := models.RolePermissions[input.Role]
	if !ok {
		return nil, models.ValidationError{Index: -1, Field: "role", Msg: "unknown role"}
	}

	existing, err := s.Repo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.DuplicateKeyError{Key: input.Username}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     input.Username,
		PasswordHash: string(hash),
		Role:         input.Role,
		Permissions:  permissions,
		IsActive:     true,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}
	logger.Info("user registered", zap.String("username", user.Username), zap.String("role", user.Role))

	token, err := utils.GenerateToken(user.ID, user.Username, user.Role, user.Permissions, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &AuthResponse{User: user, Token: token}, nil
}

// Login verifies credentials and issues a token. Inactive accounts are
// rejected with the same message as bad credentials.
func (s *DefaultAuthService) Login(ctx context.Context, input LoginInput) (*AuthResponse, error) {
	user, err := s.Repo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, models.PreconditionError{Msg: "invalid credentials"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, models.PreconditionError{Msg: "invalid credentials"}
	}

	token, err := utils.GenerateToken(user.ID, user.Username, user.Role, user.Permissions, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &AuthResponse{User: user, Token: token}, nil
}

// GetUser retrieves an account by ID.
func (s *DefaultAuthService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}

// GetAllUsers retrieves all accounts.
func (s *DefaultAuthService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.Repo.GetAll(ctx)
}
