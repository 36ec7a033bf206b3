package service

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/solarline/pos-gateway/internal/auth"
	"github.com/solarline/pos-gateway/internal/domain/entity"
	"github.com/solarline/pos-gateway/internal/domain/repository"
	"github.com/solarline/pos-gateway/internal/upstream"
	"github.com/solarline/pos-gateway/pkg/apperror"
	"github.com/solarline/pos-gateway/pkg/utils"
)

// AuthService exchanges browser credentials for an upstream API token and
// wraps the token in a gateway-owned session
type AuthService struct {
	sessionRepo repository.SessionRepository
	client      *upstream.Client
	jwtManager  *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(
	sessionRepo repository.SessionRepository,
	client *upstream.Client,
	jwtManager *utils.JWTManager,
) *AuthService {
	return &AuthService{
		sessionRepo: sessionRepo,
		client:      client,
		jwtManager:  jwtManager,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	User  entity.User
	Token string
}

// Login authenticates against the POS service and returns a session token
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	result, err := s.client.Auth.Login(ctx, input.Username, input.Password)
	if err != nil {
		if appErr := apperror.GetAppError(err); appErr.Code == http.StatusBadRequest || appErr.Code == http.StatusUnauthorized {
			return nil, apperror.ErrInvalidCredentials
		}
		return nil, err
	}
	if result.Token == "" {
		return nil, apperror.ErrInvalidCredentials
	}

	userJSON, err := json.Marshal(result.User)
	if err != nil {
		return nil, err
	}

	session := &entity.Session{
		Username:      result.User.Username,
		UpstreamToken: result.Token,
		User:          userJSON,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	token, err := s.jwtManager.GenerateSessionToken(session.ID, session.Username)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{User: result.User, Token: token}, nil
}

// Logout revokes the session. The upstream token is invalidated best
// effort; a failed upstream call still revokes locally.
func (s *AuthService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if session != nil && session.Active() {
		state := auth.NewState(session.UpstreamToken)
		_ = s.client.Auth.Logout(auth.WithState(ctx, state))
	}
	return s.sessionRepo.Revoke(ctx, sessionID)
}

// ResolveSession loads an active session and builds its auth state. The
// state's logout hook revokes the session the first time any upstream call
// comes back 401, so an expired token cannot retry in a loop.
func (s *AuthService) ResolveSession(ctx context.Context, sessionID uuid.UUID) (*entity.Session, *auth.State, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if session == nil || !session.Active() {
		return nil, nil, apperror.ErrSessionExpired
	}

	state := auth.NewState(session.UpstreamToken)
	state.OnLogout(func() {
		// Background context: the revocation must outlive a cancelled request.
		_ = s.sessionRepo.Revoke(context.Background(), session.ID)
	})
	return session, state, nil
}
