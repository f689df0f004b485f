package auth

import (
	"testing"
	"time"

	"github.com/Abros3006/business-tracker/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "super-secret-jwt-token-with-at-least-32-characters-long"

func newTestVerifier(t *testing.T) *jwtVerifier {
	t.Helper()

	verifier, err := NewJWTVerifier(&config.Config{Supabase: &config.SupabaseConfig{JWTSecret: testJWTSecret}})
	require.NoError(t, err)

	return verifier.(*jwtVerifier)
}

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func validClaims(userID uuid.UUID) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":        userID.String(),
		"aud":        "authenticated",
		"email":      "ada@example.edu",
		"role":       "authenticated",
		"session_id": "f4c1c7a2-1111-4b4b-9c9c-222233334444",
		"iat":        time.Now().Unix(),
		"exp":        time.Now().Add(time.Hour).Unix(),
	}
}

func TestNewJWTVerifier_RequiresSecret(t *testing.T) {
	_, err := NewJWTVerifier(&config.Config{})
	assert.Error(t, err)

	_, err = NewJWTVerifier(&config.Config{Supabase: &config.SupabaseConfig{}})
	assert.Error(t, err)
}

func TestJWTVerifier_Verify(t *testing.T) {
	verifier := newTestVerifier(t)
	userID := uuid.New()

	token := signToken(t, jwt.SigningMethodHS256, []byte(testJWTSecret), validClaims(userID))

	claims, err := verifier.Verify(token)

	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "ada@example.edu", claims.Email)
	assert.Equal(t, "authenticated", claims.Role)
	assert.Equal(t, "f4c1c7a2-1111-4b4b-9c9c-222233334444", claims.SessionID)
}

func TestJWTVerifier_Rejects(t *testing.T) {
	verifier := newTestVerifier(t)
	userID := uuid.New()

	expired := validClaims(userID)
	expired["exp"] = time.Now().Add(-time.Hour).Unix()

	wrongAudience := validClaims(userID)
	wrongAudience["aud"] = "anon"

	noExpiry := validClaims(userID)
	delete(noExpiry, "exp")

	badSubject := validClaims(userID)
	badSubject["sub"] = "not-a-uuid"

	tests := []struct {
		name  string
		token string
	}{
		{name: "wrong secret", token: signToken(t, jwt.SigningMethodHS256, []byte("another-secret"), validClaims(userID))},
		{name: "expired", token: signToken(t, jwt.SigningMethodHS256, []byte(testJWTSecret), expired)},
		{name: "wrong audience", token: signToken(t, jwt.SigningMethodHS256, []byte(testJWTSecret), wrongAudience)},
		{name: "missing expiry", token: signToken(t, jwt.SigningMethodHS256, []byte(testJWTSecret), noExpiry)},
		{name: "subject not a uuid", token: signToken(t, jwt.SigningMethodHS256, []byte(testJWTSecret), badSubject)},
		{name: "other algorithm", token: signToken(t, jwt.SigningMethodHS512, []byte(testJWTSecret), validClaims(userID))},
		{name: "garbage", token: "not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := verifier.Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidAccessToken)
		})
	}
}
