package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskflow-api/internal/auth"
	"taskflow-api/internal/domain"
	"taskflow-api/internal/dto"
	"taskflow-api/internal/metrics"
	"taskflow-api/internal/repository"
	"taskflow-api/internal/response"
)

const invalidCredentials = "Invalid credentials"

// TokenIssuer signs bearer tokens for a user
type TokenIssuer interface {
	Generate(userID uuid.UUID) (string, error)
}

// AuthService defines the interface for registration, login and identity lookup
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

type authServiceImpl struct {
	userRepo  repository.UserRepository
	userCache repository.UserCache
	tokens    TokenIssuer
	metrics   *metrics.Metrics
	logger    *zap.Logger
	// compared against on unknown emails so both login failures cost one bcrypt check
	dummyHash string
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(
	userRepo repository.UserRepository,
	userCache repository.UserCache,
	tokens TokenIssuer,
	m *metrics.Metrics,
	logger *zap.Logger,
) AuthService {
	dummy, err := auth.HashPassword(uuid.NewString())
	if err != nil {
		logger.Warn("Failed to prepare dummy password hash", zap.Error(err))
	}
	return &authServiceImpl{
		userRepo:  userRepo,
		userCache: userCache,
		tokens:    tokens,
		metrics:   m,
		logger:    logger,
		dummyHash: dummy,
	}
}

// Register creates an account and returns a token for it
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	_, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err == nil {
		s.metrics.RecordAuthAttempt("register", false)
		return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Email already registered", "")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, internalError("Failed to check email", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, internalError("Failed to hash password", err)
	}

	user := &domain.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// lost a race with a concurrent registration of the same email
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			s.metrics.RecordAuthAttempt("register", false)
			return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Email already registered", "")
		}
		return nil, internalError("Failed to create user", err)
	}

	s.metrics.RecordAuthAttempt("register", true)
	s.metrics.IncrementCreated(metrics.EntityUser)
	s.logger.Info("User registered", zap.String("user_id", user.ID.String()))

	return s.issue(user)
}

// Login verifies credentials. Unknown email and wrong password are reported identically.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internalError("Failed to fetch user", err)
		}
		auth.CheckPassword(s.dummyHash, req.Password)
		s.metrics.RecordAuthAttempt("login", false)
		return nil, response.NewUnauthorizedError(invalidCredentials, "")
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		s.metrics.RecordAuthAttempt("login", false)
		return nil, response.NewUnauthorizedError(invalidCredentials, "")
	}

	s.metrics.RecordAuthAttempt("login", true)
	return s.issue(user)
}

// CurrentUser returns the public view of the authenticated user
func (s *authServiceImpl) CurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	cached, err := s.userCache.Get(ctx, userID)
	if err != nil {
		s.logger.Warn("User cache read failed", zap.String("user_id", userID.String()), zap.Error(err))
	}
	if cached != nil {
		resp := dto.NewUserResponse(cached)
		return &resp, nil
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, lookupError(err, "User")
	}

	if err := s.userCache.Set(ctx, user); err != nil {
		s.logger.Warn("User cache write failed", zap.String("user_id", userID.String()), zap.Error(err))
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *authServiceImpl) issue(user *domain.User) (*dto.AuthResponse, error) {
	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, internalError("Failed to issue token", err)
	}
	return &dto.AuthResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	}, nil
}
