package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"savings-tracker/internal/dto"
	"savings-tracker/internal/models"
	"savings-tracker/internal/repositories"

	"github.com/google/uuid"
)

const TokenTypeBearer = "bearer"

var (
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrUserAlreadyExists  = errors.New("email or username already registered")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo             repositories.UserRepositoryInterface
	blacklistedTokenRepo repositories.BlacklistedTokenRepositoryInterface
	passwordService      PasswordServiceInterface
	tokenService         TokenServiceInterface
	activity             ActivityLoggerInterface
	metrics              MetricsRecorderInterface
	logger               *slog.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	blacklistedTokenRepo repositories.BlacklistedTokenRepositoryInterface,
	passwordService PasswordServiceInterface,
	tokenService TokenServiceInterface,
	activity ActivityLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:             userRepo,
		blacklistedTokenRepo: blacklistedTokenRepo,
		passwordService:      passwordService,
		tokenService:         tokenService,
		activity:             activity,
		metrics:              metrics,
		logger:               logger,
	}
}

// Register creates a new user. Email and username must both be unused.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)

	exists, err := s.userRepo.ExistsByEmailOrUsername(ctx, email, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	if exists {
		s.activity.LogRegistrationRejected(ctx, "email_or_username_taken")
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := s.passwordService.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		Username:     username,
		PasswordHash: hashedPassword,
		City:         strings.TrimSpace(req.City),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			s.activity.LogRegistrationRejected(ctx, "unique_index_conflict")
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.activity.LogUserRegistered(ctx, user.ID, user.Email)
	s.metrics.IncrementCounter(MetricAuthenticationEvent, map[string]string{"event_type": "register"})

	return user, nil
}

// Authenticate looks a user up by email or username and checks the password.
// Unknown users and wrong passwords both yield ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, identifier, password string) (*models.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		s.activity.LogLoginFailed(ctx, identifier, "missing_credentials")
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.activity.LogLoginFailed(ctx, identifier, "user_not_found")
			s.metrics.IncrementCounter(MetricAuthenticationEvent, map[string]string{"event_type": "login_failed"})
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !s.passwordService.ComparePassword(password, user.PasswordHash) {
		s.activity.LogLoginFailed(ctx, identifier, "invalid_password")
		s.metrics.IncrementCounter(MetricAuthenticationEvent, map[string]string{"event_type": "login_failed"})
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Login authenticates a user and returns a bearer token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	accessToken, expiresAt, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.activity.LogLoginSucceeded(ctx, user.ID)
	s.metrics.IncrementCounter(MetricAuthenticationEvent, map[string]string{"event_type": "login"})

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   TokenTypeBearer,
		ExpiresAt:   expiresAt,
	}, nil
}

// Logout blacklists the token's JTI until the token would have expired
func (s *AuthService) Logout(ctx context.Context, accessToken string) error {
	claims, err := s.tokenService.ValidateAccessToken(accessToken)
	if err != nil {
		// an invalid or expired token is already unusable
		s.logger.Debug("logout with unusable token", "error", err)
		return nil
	}

	userID, _ := uuid.Parse(claims.Subject)

	expiry := time.Now().Add(24 * time.Hour)
	if claims.ExpiresAt != nil {
		expiry = claims.ExpiresAt.Time
	}

	if err := s.blacklistToken(ctx, claims.ID, userID, expiry); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	s.activity.LogLogout(ctx, userID)
	s.metrics.IncrementCounter(MetricAuthenticationEvent, map[string]string{"event_type": "logout"})

	return nil
}

// GetProfile returns the stored user for userID
func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// PurgeExpiredTokens removes blacklist rows whose tokens have expired anyway
func (s *AuthService) PurgeExpiredTokens(ctx context.Context) (int64, error) {
	deleted, err := s.blacklistedTokenRepo.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired tokens: %w", err)
	}

	if deleted > 0 {
		s.metrics.RecordGauge(MetricTokensPurged, float64(deleted), nil)
		s.logger.Info("purged expired blacklisted tokens", "count", deleted)
	}
	return deleted, nil
}

func (s *AuthService) blacklistToken(ctx context.Context, jti string, userID uuid.UUID, expiresAt time.Time) error {
	token := &models.BlacklistedToken{
		JTI:       jti,
		UserID:    userID,
		ExpiresAt: expiresAt,
	}
	return s.blacklistedTokenRepo.Create(ctx, token)
}
