package checkout

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/walkout/backend/internal/domain/checkout"
	"github.com/walkout/backend/internal/domain/identity"
	"github.com/walkout/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// SessionService handles shopping session lifecycle operations
type SessionService struct {
	sessionRepo checkout.SessionRepository
	userRepo    identity.UserRepository
	logger      *zap.Logger
}

// NewSessionService creates a new SessionService
func NewSessionService(
	sessionRepo checkout.SessionRepository,
	userRepo identity.UserRepository,
	logger *zap.Logger,
) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// StartSession opens a new active session for the user. A user has at most
// one active session at a time; a second start is rejected as a conflict.
func (s *SessionService) StartSession(ctx context.Context, userID uuid.UUID) (*SessionResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	existing, err := s.sessionRepo.FindActiveByUser(ctx, user.ID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An active session already exists for this user")
	}

	session := checkout.NewShoppingSession(user.ID)

	// The partial unique index on (user_id) WHERE status = 'active' closes
	// the race between the pre-check and the insert; Save surfaces a
	// duplicate as ErrAlreadyExists.
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "An active session already exists for this user")
		}
		return nil, err
	}

	s.logger.Info("Shopping session started",
		zap.String("session_id", session.ID.String()),
		zap.String("user_id", user.ID.String()))

	return ToSessionResponse(session), nil
}

// ActiveSession returns the user's current active session
func (s *SessionService) ActiveSession(ctx context.Context, userID uuid.UUID) (*SessionResponse, error) {
	session, err := s.sessionRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "No active session for this user")
		}
		return nil, err
	}
	return ToSessionResponse(session), nil
}
