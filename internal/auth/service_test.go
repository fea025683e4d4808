package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayurihegde/evently-backend/config"
)

func refreshService() *Service {
	return NewService(nil, nil, &config.Config{JWTRefreshSecret: "refresh-secret"})
}

func TestRefreshRejectsWrongSigningMethod(t *testing.T) {
	s := refreshService()

	// Signed with the right secret but the wrong HMAC variant; only
	// HS256 tokens are ever issued, so anything else must be refused.
	token := jwt.NewWithClaims(jwt.SigningMethodHS384, jwt.MapClaims{
		"user_id": float64(1),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("refresh-secret"))
	require.NoError(t, err)

	_, err = s.Refresh(RefreshRequest{RefreshToken: signed})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshRejectsUnsignedToken(t *testing.T) {
	s := refreshService()

	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": float64(1),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = s.Refresh(RefreshRequest{RefreshToken: signed})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	s := refreshService()

	_, err := s.Refresh(RefreshRequest{RefreshToken: "not-a-token"})
	assert.ErrorIs(t, err, ErrInvalidToken)
}
