package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/walkout/backend/internal/domain/identity"
	"github.com/walkout/backend/internal/domain/shared"
	"github.com/walkout/backend/internal/infrastructure/auth"
	"github.com/walkout/backend/internal/infrastructure/otp"
	"go.uber.org/zap"
)

// AuthService handles phone registration and verification
type AuthService struct {
	userRepo    identity.UserRepository
	otpProvider otp.Provider
	jwtService  *auth.JWTService
	logger      *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	otpProvider otp.Provider,
	jwtService *auth.JWTService,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		otpProvider: otpProvider,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Register creates a new user for the phone number and issues a
// verification code. Code delivery is out of band; it is logged here so
// development flows can complete without an SMS gateway.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*UserResponse, error) {
	user, err := identity.NewUser(input.PhoneNumber)
	if err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByPhone(ctx, user.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Phone number is already registered")
	}

	// The unique index on phone closes the race left by the pre-check;
	// Save surfaces a duplicate as ErrAlreadyExists.
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	code, err := s.otpProvider.Issue(ctx, user.PhoneNumber)
	if err != nil {
		s.logger.Error("Failed to issue verification code",
			zap.String("phone", user.PhoneNumber),
			zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to issue verification code")
	}

	s.logger.Info("Verification code issued",
		zap.String("phone", user.PhoneNumber),
		zap.String("code", code))

	return ToUserResponse(user), nil
}

// Verify checks the code for the phone number and returns a bearer token.
// Unknown phone numbers and wrong codes are indistinguishable to the caller.
func (s *AuthService) Verify(ctx context.Context, input VerifyInput) (*VerifyResult, error) {
	user, err := s.userRepo.FindByPhone(ctx, input.PhoneNumber)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Verification attempt for unknown phone", zap.String("phone", input.PhoneNumber))
			return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid phone number or verification code")
		}
		return nil, err
	}

	ok, err := s.otpProvider.Verify(ctx, user.PhoneNumber, input.Code)
	if err != nil {
		s.logger.Error("Verification provider failed", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to verify code")
	}
	if !ok {
		s.logger.Warn("Invalid verification code", zap.String("phone", user.PhoneNumber))
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid phone number or verification code")
	}

	token, err := s.jwtService.GenerateAccessToken(user.ID)
	if err != nil {
		s.logger.Error("Failed to generate access token", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate access token")
	}

	s.logger.Info("User verified", zap.String("user_id", user.ID.String()))

	return &VerifyResult{
		AccessToken: token.Token,
		TokenType:   token.TokenType,
		ExpiresAt:   token.ExpiresAt,
	}, nil
}

// Me returns the authenticated user's profile
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.findAuthenticatedUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// UpdatePaymentToken attaches or replaces the user's stored payment token
func (s *AuthService) UpdatePaymentToken(ctx context.Context, userID uuid.UUID, token string) (*UserResponse, error) {
	user, err := s.findAuthenticatedUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := user.SetPaymentToken(token); err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("Payment token updated", zap.String("user_id", user.ID.String()))
	return ToUserResponse(user), nil
}

// findAuthenticatedUser resolves a user id taken from a bearer token. A
// validly signed token whose subject no longer exists is an authentication
// failure, not a missing resource.
func (s *AuthService) findAuthenticatedUser(ctx context.Context, userID uuid.UUID) (*identity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Token references unknown user", zap.String("user_id", userID.String()))
			return nil, shared.NewDomainError("UNAUTHORIZED", "Authentication required")
		}
		return nil, err
	}
	return user, nil
}
