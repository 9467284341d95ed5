package auth

import (
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"conduit/config"
	"conduit/internal/domain/service"
)

// identityClaims is the wire shape of an issued token: the subject
// identifier plus the registered time claims. Tokens are immutable after
// issuance; renewal means issuing a new one.
type identityClaims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface
// using HS256-signed JWTs. The secret and validity window are fixed at
// construction; timeFunc is injectable for tests.
type jwtService struct {
	secret   []byte
	ttl      time.Duration
	timeFunc func() time.Time
	logger   *slog.Logger
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config, logger *slog.Logger) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:   []byte(cfg.JWT.Secret),
		ttl:      cfg.JWT.TTL,
		timeFunc: time.Now,
		logger:   logger,
	}, nil
}

// Generate issues a signed token for the given subject, expiring one
// validity window from now.
func (s *jwtService) Generate(userID int64) (string, error) {
	now := s.timeFunc()
	claims := identityClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// Validate parses and verifies a token string and returns its subject.
// The parser pins the algorithm to HS256, so a token re-signed under a
// substituted algorithm fails before any claim is read. Every defect maps
// to service.ErrInvalidToken; the distinction is logged at debug only.
func (s *jwtService) Validate(tokenString string) (int64, error) {
	claims := &identityClaims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}

			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(s.timeFunc),
	)
	if err != nil {
		s.logDebug("token validation failed", err)

		return 0, service.ErrInvalidToken
	}

	if !token.Valid || claims.ExpiresAt == nil {
		s.logDebug("token claims invalid", nil)

		return 0, service.ErrInvalidToken
	}

	return claims.UserID, nil
}

// TTL returns the configured validity window.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}

func (s *jwtService) logDebug(msg string, err error) {
	if s.logger == nil {
		return
	}
	if err != nil {
		s.logger.Debug(msg, slog.Any("error", err))

		return
	}
	s.logger.Debug(msg)
}
