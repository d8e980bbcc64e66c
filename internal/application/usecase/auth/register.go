// Package auth contains authentication use cases.
package auth

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/farm-tracker/backend/internal/application/adapter"
	"github.com/farm-tracker/backend/internal/domain/entity"
	domainerror "github.com/farm-tracker/backend/internal/domain/error"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// RegisterInput represents the input for user registration. Registration
// creates both the login account and the linked farmer profile.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	Phone           string
	Address         string
	ExperienceYears int
	LandAreaAcres   decimal.Decimal
}

// RegisterOutput represents the output of user registration.
type RegisterOutput struct {
	User   *entity.User
	Farmer *entity.Farmer
	Tokens *adapter.TokenPair
}

// RegisterUseCase handles user registration logic.
type RegisterUseCase struct {
	userRepo        adapter.UserRepository
	farmerRepo      adapter.FarmerRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewRegisterUseCase creates a new RegisterUseCase instance.
func NewRegisterUseCase(
	userRepo adapter.UserRepository,
	farmerRepo adapter.FarmerRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:        userRepo,
		farmerRepo:      farmerRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the registration.
func (uc *RegisterUseCase) Execute(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if name == "" || email == "" || input.Password == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"name, email and password are required",
			nil,
		)
	}
	if !emailPattern.MatchString(email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}
	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			err,
		)
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailExists,
			"an account with this email already exists",
			domainerror.ErrEmailAlreadyExists,
		)
	}

	hash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(email, name, hash)
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	farmer := entity.NewFarmer(name, input.Phone, email, input.Address, nil, input.ExperienceYears, input.LandAreaAcres)
	farmer.UserID = &user.ID
	if err := uc.farmerRepo.Create(ctx, farmer); err != nil {
		return nil, fmt.Errorf("failed to create farmer profile: %w", err)
	}

	tokens, err := uc.tokenService.GenerateTokenPair(ctx, user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &RegisterOutput{
		User:   user,
		Farmer: farmer,
		Tokens: tokens,
	}, nil
}
