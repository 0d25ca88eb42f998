package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/dscatalog/catalog-system/internal/core/domain"
	"github.com/dscatalog/catalog-system/internal/core/ports"
)

// LoginLimiter abstracts the failed-login throttle (Redis).
type LoginLimiter interface {
	TooManyAttempts(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

// Client is the single registered OAuth2 client, configured in memory.
type Client struct {
	ID     string
	Secret string
	Scopes []string
}

// AuthService implements the password grant: verify client, verify user
// credentials, sign a time-limited HS256 token carrying the user's id and
// first name as custom claims.
type AuthService struct {
	users     ports.UserRepository
	limiter   LoginLimiter
	client    Client
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(users ports.UserRepository, limiter LoginLimiter, client Client, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	if len(client.Scopes) == 0 {
		client.Scopes = []string{"read", "write"}
	}
	return &AuthService{
		users:     users,
		limiter:   limiter,
		client:    client,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

func (s *AuthService) IssueToken(ctx context.Context, grant ports.PasswordGrant) (*ports.TokenResult, error) {
	if grant.GrantType != "password" {
		return nil, domain.ErrUnsupportedGrant
	}
	if !s.validClient(grant.ClientID, grant.ClientSecret) {
		return nil, domain.ErrInvalidClient
	}
	if grant.Username == "" || grant.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		blocked, err := s.limiter.TooManyAttempts(ctx, grant.Username)
		if err != nil {
			s.log.Warn().Err(err).Str("username", grant.Username).Msg("throttle check failed, processing anyway")
		} else if blocked {
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByEmail(ctx, grant.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Indistinguishable from a bad password on the wire.
			s.recordFailure(ctx, grant.Username)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(grant.Password)) != nil {
		s.recordFailure(ctx, grant.Username)
		return nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, grant.Username); err != nil {
			s.log.Warn().Err(err).Str("username", grant.Username).Msg("failed to reset login throttle")
		}
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", user.Email).Int64("user_id", user.ID).Msg("access token issued")

	return &ports.TokenResult{
		AccessToken:   token,
		TokenType:     "bearer",
		ExpiresIn:     int64(s.tokenTTL.Seconds()),
		Scope:         strings.Join(s.client.Scopes, " "),
		UserFirstName: user.FirstName,
		UserID:        user.ID,
	}, nil
}

func (s *AuthService) validClient(id, secret string) bool {
	idOK := subtle.ConstantTimeCompare([]byte(id), []byte(s.client.ID)) == 1
	secretOK := subtle.ConstantTimeCompare([]byte(secret), []byte(s.client.Secret)) == 1
	return idOK && secretOK
}

func (s *AuthService) recordFailure(ctx context.Context, username string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.RecordFailure(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("failed to record login failure")
	}
}

func (s *AuthService) signToken(user *domain.User) (string, error) {
	authorities := make([]string, len(user.Roles))
	for i, r := range user.Roles {
		authorities[i] = r.Authority
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":           user.Email,
		"scope":         s.client.Scopes,
		"authorities":   authorities,
		"userFirstName": user.FirstName,
		"id":            user.ID,
		"iat":           now.Unix(),
		"exp":           now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
