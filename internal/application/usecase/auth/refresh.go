// Package auth contains authentication use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/farm-tracker/backend/internal/application/adapter"
	domainerror "github.com/farm-tracker/backend/internal/domain/error"
)

// RefreshInput represents the input for token refresh.
type RefreshInput struct {
	RefreshToken string
}

// RefreshOutput represents the output of token refresh.
type RefreshOutput struct {
	Tokens *adapter.TokenPair
}

// RefreshUseCase exchanges a valid refresh token for a new token pair.
// The used refresh token is invalidated so it cannot be replayed.
type RefreshUseCase struct {
	userRepo     adapter.UserRepository
	tokenService adapter.TokenService
}

// NewRefreshUseCase creates a new RefreshUseCase instance.
func NewRefreshUseCase(userRepo adapter.UserRepository, tokenService adapter.TokenService) *RefreshUseCase {
	return &RefreshUseCase{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Execute performs the token refresh.
func (uc *RefreshUseCase) Execute(ctx context.Context, input RefreshInput) (*RefreshOutput, error) {
	if input.RefreshToken == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingToken,
			"refresh token is required",
			nil,
		)
	}

	claims, err := uc.tokenService.ValidateRefreshToken(ctx, input.RefreshToken)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid refresh token",
			err,
		)
	}

	valid, err := uc.tokenService.IsRefreshTokenValid(ctx, input.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if !valid {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"refresh token has been invalidated",
			domainerror.ErrInvalidToken,
		)
	}

	// The account may have been deleted since the token was issued.
	user, err := uc.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			err,
		)
	}

	if err := uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to invalidate refresh token: %w", err)
	}

	tokens, err := uc.tokenService.GenerateTokenPair(ctx, user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &RefreshOutput{Tokens: tokens}, nil
}
