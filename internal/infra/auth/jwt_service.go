package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"uploader/config"
	"uploader/internal/domain/service"
)

const (
	// minSecretLength is 256 bits, the HS256 key size.
	minSecretLength = 32

	defaultTokenTTL = time.Hour
)

// JWTOption customizes the jwtService.
type JWTOption func(*jwtService)

// WithClock replaces time.Now as the source of the current time for issuing and verifying.
func WithClock(clock func() time.Time) JWTOption {
	return func(s *jwtService) {
		s.clock = clock
	}
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	clock  func() time.Time
}

// NewJWTService is the constructor for jwtService.
// The secret must already be resolved; config.New generates one when none is configured.
func NewJWTService(cfg *config.Config, opts ...JWTOption) (service.TokenService, error) {
	if cfg.Auth == nil || len(cfg.Auth.SecretKey) < minSecretLength {
		return nil, errors.Errorf("jwt secret must be at least %d bytes", minSecretLength)
	}

	s := &jwtService{
		secret: []byte(cfg.Auth.SecretKey),
		ttl:    cfg.Auth.TokenTTL,
		clock:  time.Now,
	}
	if s.ttl <= 0 {
		s.ttl = defaultTokenTTL
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Issue signs a token for the subject valid for the configured TTL from now.
func (s *jwtService) Issue(subject uuid.UUID) (string, time.Time, error) {
	now := s.clock()
	claims := jwt.RegisteredClaims{
		Subject:   subject.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		// Distinguishes tokens issued to one subject within the same second.
		ID: uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign token")
	}

	return signed, claims.ExpiresAt.Time, nil
}

// Verify checks the signature first, then expiry, then the subject.
func (s *jwtService) Verify(tokenString string) (uuid.UUID, time.Time, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock),
	)

	claims := &jwt.RegisteredClaims{}
	_, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		// Claims are only validated once the signature checks out.
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, claims.ExpiresAt.Time, errors.WithStack(service.ErrTokenExpired)
		}

		return uuid.Nil, time.Time{}, errors.Wrap(service.ErrTokenMalformed, err.Error())
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil || subject == uuid.Nil {
		return uuid.Nil, time.Time{}, errors.Wrap(service.ErrTokenMalformed, "subject is not a uuid")
	}

	return subject, claims.ExpiresAt.Time, nil
}

// ExpiresAt reads exp from an unverified token.
func (s *jwtService) ExpiresAt(tokenString string) (time.Time, bool) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}

	return claims.ExpiresAt.Time, true
}

// TTL returns the lifetime of issued tokens.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}
