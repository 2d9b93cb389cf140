package auth

import (
	"context"

	"waitwise/internal/shared/config"
	"waitwise/pkg/logger"
)

// StaffRole is the only role the demo login grants
const StaffRole = "staff"

// Service issues staff credentials
type Service interface {
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
}

type service struct {
	config config.AuthConfig
}

func NewService(cfg config.AuthConfig) Service {
	return &service{config: cfg}
}

// Login accepts any credentials and hands back the configured demo token
func (s *service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	logger.GetDefault().LogAuthSuccess(ctx, req.Email, "password")

	return &LoginResponse{
		Token:     s.config.DemoToken,
		ExpiresIn: int64(s.config.TokenTTL.Seconds()),
		Role:      StaffRole,
	}, nil
}
