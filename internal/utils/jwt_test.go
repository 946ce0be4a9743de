// internal/utils/jwt_test.go
package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndValidateAdminToken(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := SignAdminToken(12)
	require.NoError(t, err)

	claims, err := ValidateAdminToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
	assert.WithinDuration(t, time.Now().Add(12*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	SetJWTSecret("first-secret")
	token, err := SignAdminToken(1)
	require.NoError(t, err)

	SetJWTSecret("second-secret")
	_, err = ValidateAdminToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := SignAdminToken(-1)
	require.NoError(t, err)

	_, err = ValidateAdminToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsWrongRole(t *testing.T) {
	SetJWTSecret("test-secret")

	claims := AdminClaims{
		Role: "viewer",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ValidateAdminToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	SetJWTSecret("test-secret")

	_, err := ValidateAdminToken("definitely.not.a.jwt")
	assert.Error(t, err)
}
