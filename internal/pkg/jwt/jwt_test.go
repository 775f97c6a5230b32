//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"meeting-room-booking/internal/pkg/clock"
	"meeting-room-booking/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "unit-test-secret"

func TestService_RoundTrip(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2030, 1, 15, 9, 0, 0, 0, time.UTC))
	svc := jwt.NewService(secret, time.Hour, clk)

	token, err := svc.GenerateToken("admin")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, jwt.RoleAdmin, claims.Role)
	assert.Equal(t, jwt.Issuer, claims.Issuer)
	assert.True(t, claims.ExpiresAt.Equal(clk.Now().Add(time.Hour)))
}

func TestService_Expiry(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2030, 1, 15, 9, 0, 0, 0, time.UTC))
	svc := jwt.NewService(secret, time.Hour, clk)
	token, err := svc.GenerateToken("admin")
	require.NoError(t, err)

	clk.Add(59 * time.Minute)
	_, err = svc.ValidateToken(token)
	require.NoError(t, err)

	clk.Add(2 * time.Minute)
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestService_Rejects(t *testing.T) {
	now := time.Now()
	svc := jwt.NewService(secret, time.Hour, clock.NewRealClock())

	sign := func(t *testing.T, method gojwt.SigningMethod, key any, claims jwt.Claims) string {
		t.Helper()
		s, err := gojwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	valid := gojwt.RegisteredClaims{
		Issuer:    jwt.Issuer,
		Subject:   "admin",
		ExpiresAt: gojwt.NewNumericDate(now.Add(time.Hour)),
	}

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{name: "garbage", token: func(*testing.T) string { return "not.a.token" }},
		{name: "other secret", token: func(t *testing.T) string {
			return sign(t, gojwt.SigningMethodHS256, []byte("other"), jwt.Claims{Role: jwt.RoleAdmin, RegisteredClaims: valid})
		}},
		{name: "unsigned", token: func(t *testing.T) string {
			return sign(t, gojwt.SigningMethodNone, gojwt.UnsafeAllowNoneSignatureType, jwt.Claims{Role: jwt.RoleAdmin, RegisteredClaims: valid})
		}},
		{name: "foreign issuer", token: func(t *testing.T) string {
			c := valid
			c.Issuer = "someone-else"
			return sign(t, gojwt.SigningMethodHS256, []byte(secret), jwt.Claims{Role: jwt.RoleAdmin, RegisteredClaims: c})
		}},
		{name: "no expiry", token: func(t *testing.T) string {
			c := valid
			c.ExpiresAt = nil
			return sign(t, gojwt.SigningMethodHS256, []byte(secret), jwt.Claims{Role: jwt.RoleAdmin, RegisteredClaims: c})
		}},
		{name: "wrong role", token: func(t *testing.T) string {
			return sign(t, gojwt.SigningMethodHS256, []byte(secret), jwt.Claims{Role: "user", RegisteredClaims: valid})
		}},
		{name: "empty subject", token: func(t *testing.T) string {
			c := valid
			c.Subject = ""
			return sign(t, gojwt.SigningMethodHS256, []byte(secret), jwt.Claims{Role: jwt.RoleAdmin, RegisteredClaims: c})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tt.token(t))
			assert.ErrorIs(t, err, jwt.ErrInvalidToken)
		})
	}
}
