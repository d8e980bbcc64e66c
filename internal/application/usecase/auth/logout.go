// Package auth contains authentication use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/farm-tracker/backend/internal/application/adapter"
	domainerror "github.com/farm-tracker/backend/internal/domain/error"
)

// LogoutInput represents the input for user logout.
type LogoutInput struct {
	RefreshToken string
}

// LogoutUseCase invalidates a refresh token so the session cannot be
// extended. Access tokens simply expire.
type LogoutUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUseCase creates a new LogoutUseCase instance.
func NewLogoutUseCase(tokenService adapter.TokenService) *LogoutUseCase {
	return &LogoutUseCase{
		tokenService: tokenService,
	}
}

// Execute performs the logout.
func (uc *LogoutUseCase) Execute(ctx context.Context, input LogoutInput) error {
	if input.RefreshToken == "" {
		return domainerror.NewAuthError(
			domainerror.ErrCodeMissingToken,
			"refresh token is required",
			nil,
		)
	}

	if err := uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken); err != nil {
		return fmt.Errorf("failed to invalidate refresh token: %w", err)
	}

	return nil
}
