package services

import (
	"context"

	"github.com/dimasprayoga/pos-backend/internal/dto"
)

// AuthSvcFacade defines authentication operations. The rest of the core
// only consumes the resolved cashier identity; no further identity logic
// leaks past this facade.
type AuthSvcFacade interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error)
}
