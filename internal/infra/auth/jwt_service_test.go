package auth

import (
	"testing"

	"zoning/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, secret string) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})

	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestService(t, "test-secret")
	userID := uuid.New()

	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)

	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer := newTestService(t, "secret-a")
	verifier := newTestService(t, "secret-b")

	token, err := issuer.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)

	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := newTestService(t, "test-secret")

	_, err := svc.ValidateToken("not.a.token")

	assert.Error(t, err)
}
