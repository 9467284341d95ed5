package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conduit/config"
	"conduit/internal/domain/service"
)

func newTestJWTService(t *testing.T, secret string, ttl time.Duration) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.TTL = ttl

	svc, err := NewJWTService(cfg, nil)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.TTL = time.Hour

	_, err := NewJWTService(cfg, nil)
	require.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", 7*24*time.Hour)

	token, err := svc.Generate(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestJWTService_ValidityWindow(t *testing.T) {
	issuedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	ttl := 7 * 24 * time.Hour

	svc := newTestJWTService(t, "test-secret", ttl)
	svc.timeFunc = func() time.Time { return issuedAt }

	token, err := svc.Generate(7)
	require.NoError(t, err)

	tests := []struct {
		name    string
		now     time.Time
		wantErr bool
	}{
		{name: "at issuance", now: issuedAt, wantErr: false},
		{name: "just before expiry", now: issuedAt.Add(ttl - time.Second), wantErr: false},
		{name: "at expiry", now: issuedAt.Add(ttl), wantErr: true},
		{name: "after expiry", now: issuedAt.Add(ttl + time.Hour), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc.timeFunc = func() time.Time { return tt.now }

			userID, err := svc.Validate(token)
			if tt.wantErr {
				assert.ErrorIs(t, err, service.ErrInvalidToken)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(7), userID)
			}
		})
	}
}

func TestJWTService_TamperedTokenRejected(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", time.Hour)

	token, err := svc.Generate(42)
	require.NoError(t, err)

	// Flip one character in each segment: header, payload, signature.
	for _, segment := range []int{0, 1, 2} {
		parts := strings.Split(token, ".")
		require.Len(t, parts, 3)

		flip := []byte(parts[segment])
		if flip[0] == 'A' {
			flip[0] = 'B'
		} else {
			flip[0] = 'A'
		}
		parts[segment] = string(flip)

		_, err := svc.Validate(strings.Join(parts, "."))
		assert.ErrorIs(t, err, service.ErrInvalidToken, "segment %d", segment)
	}
}

func TestJWTService_WrongSecretRejected(t *testing.T) {
	issuer := newTestJWTService(t, "secret-one", time.Hour)
	verifier := newTestJWTService(t, "secret-two", time.Hour)

	token, err := issuer.Generate(42)
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_AlgorithmSubstitutionRejected(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", time.Hour)

	// An unsigned ("none") token must never pass, even with valid claims.
	claims := identityClaims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Validate(unsigned)
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	// A token signed under a different HMAC variant is also refused: the
	// parser only accepts HS256.
	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Validate(hs512)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_MissingExpiryRejected(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", time.Hour)

	claims := identityClaims{UserID: 42}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_TTL(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", 48*time.Hour)
	assert.Equal(t, 48*time.Hour, svc.TTL())
}
