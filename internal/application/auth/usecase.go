package auth

import (
	"context"
	"time"

	"github.com/TanmayElinje/inventory-pro/internal/application/dto"
	"github.com/TanmayElinje/inventory-pro/internal/domain"
	"github.com/TanmayElinje/inventory-pro/internal/domain/entity"
	"github.com/TanmayElinje/inventory-pro/internal/domain/repository"
	"github.com/TanmayElinje/inventory-pro/pkg/config"
	"github.com/TanmayElinje/inventory-pro/pkg/jwt"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase registration and login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	signup   config.SignupConfig
}

// NewAuthUseCase builds the auth use case. Signup codes come in as explicit
// configuration, not ambient process state.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, signup config.SignupConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, signup: signup}
}

// RegisterUser creates a user: hashes the password with bcrypt, resolves the
// role from the signup code and persists. Returns ErrUsernameTaken when the
// username exists.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         uc.roleForCode(in.SignupCode),
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifies username/password, generates a JWT and returns token + user.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// GetUser returns the public view of a user by ID (for GET /api/me).
func (uc *AuthUseCase) GetUser(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// roleForCode maps a signup code to a role. Unknown or empty codes register
// as staff; a code is never a hard failure.
func (uc *AuthUseCase) roleForCode(code string) string {
	switch {
	case code != "" && code == uc.signup.AdminCode:
		return entity.RoleAdmin
	case code != "" && code == uc.signup.ManagerCode:
		return entity.RoleManager
	default:
		return entity.RoleStaff
	}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
