package commands

import (
	"context"
	"log/slog"

	"github.com/TOOL2U/LandWise/internal/pkg/config"
	"github.com/TOOL2U/LandWise/internal/pkg/errs"
	"github.com/TOOL2U/LandWise/internal/pkg/jwt"
	"github.com/TOOL2U/LandWise/internal/pkg/password"
)

type LoginResult struct {
	Token string
	Email string
}

// AuthCommands authenticates the dashboard operator. There is no user table;
// the single admin credential lives in configuration as a bcrypt hash.
type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	admin      config.AdminConfig
	jwtService *jwt.Service
}

func NewAuthCommands(admin config.AdminConfig, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{admin: admin, jwtService: jwtService}
}

func (a *authCommandsImpl) Login(_ context.Context, email, plainPassword string) (*LoginResult, error) {
	if a.admin.Email == "" || a.admin.PasswordHash == "" {
		return nil, errs.ErrAdminNotConfigured
	}
	// Identical error for wrong email and wrong password.
	if email != a.admin.Email {
		return nil, errs.ErrInvalidCredentials
	}
	if err := password.ComparePassword(a.admin.PasswordHash, plainPassword); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateAdminToken(email)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate admin token")
	}

	slog.Info("admin login", "email", email)
	return &LoginResult{Token: token, Email: email}, nil
}
