package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dimasprayoga/pos-backend/internal/apperrors"
	"github.com/dimasprayoga/pos-backend/internal/core/domain"
	portsrepo "github.com/dimasprayoga/pos-backend/internal/core/ports/repositories"
	portssvc "github.com/dimasprayoga/pos-backend/internal/core/ports/services"
	"github.com/dimasprayoga/pos-backend/internal/dto"
	"github.com/dimasprayoga/pos-backend/internal/middleware"
	"github.com/dimasprayoga/pos-backend/internal/platform/config"
	"github.com/dimasprayoga/pos-backend/internal/utils"
)

// ErrInvalidCredentials is returned for a wrong email/password pair.
// Deliberately indistinguishable between the two so login probing leaks
// nothing.
var ErrInvalidCredentials = errors.New("invalid email or password")

// authService handles login, registration, and token refresh.
type authService struct {
	userRepo portsrepo.UserRepositoryFacade
	cfg      *config.Config
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, cfg *config.Config) portssvc.AuthSvcFacade {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// Ensure authService implements the portssvc.AuthSvcFacade interface
var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login verifies credentials and issues an access/refresh token pair.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.Warn("Login failed: password mismatch", slog.String("user_id", user.UserID))
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// Register creates a new cashier account. Accounts created through the
// public endpoint always get the CASHIER role; promoting to ADMIN is an
// operational task, not an API feature.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to hash password", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         domain.RoleCashier,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	middleware.GetLoggerFromCtx(ctx).Info("User registered", slog.String("user_id", user.UserID))
	return s.issueTokens(&user)
}

// Refresh exchanges a valid refresh token for a fresh access token.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error) {
	claims, err := utils.ParseAndValidateJWT(refreshToken, s.cfg.RefreshTokenSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid refresh token", apperrors.ErrForbidden)
	}

	// Re-read the user so a role change or deletion invalidates old
	// refresh tokens on the next rotation.
	user, err := s.userRepo.FindUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: user no longer exists", apperrors.ErrForbidden)
		}
		return nil, err
	}

	token, err := utils.GenerateJWT(user.UserID, string(user.Role), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to generate access token", err)
	}

	return &dto.RefreshResponse{Token: token}, nil
}

func (s *authService) issueTokens(user *domain.User) (*dto.AuthResponse, error) {
	token, err := utils.GenerateJWT(user.UserID, string(user.Role), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to generate access token", err)
	}

	refreshToken, err := utils.GenerateJWT(user.UserID, string(user.Role), s.cfg.RefreshTokenSecret, s.cfg.RefreshTokenExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to generate refresh token", err)
	}

	return &dto.AuthResponse{
		Token:        token,
		RefreshToken: refreshToken,
		User:         dto.ToUserResponse(user),
	}, nil
}
