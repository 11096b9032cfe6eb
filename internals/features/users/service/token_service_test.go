package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawmart_backend/internals/configs"
	"pawmart_backend/internals/features/users/model"
)

func testUser() *model.User {
	return &model.User{
		UserID:    uuid.New(),
		UserName:  "Karim",
		UserEmail: "karim@example.com",
		UserRole:  model.UserRoleUser,
	}
}

func TestAccessTokenClaims(t *testing.T) {
	configs.JWTSecret = "test-secret"
	u := testUser()

	raw, err := GenerateAccessToken(u)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, u.UserID.String(), claims["user_id"])
	assert.Equal(t, "karim@example.com", claims["email"])
	assert.Equal(t, model.UserRoleUser, claims["role"])
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	configs.JWTRefreshSecret = "refresh-secret"
	u := testUser()

	raw, err := GenerateRefreshToken(u)
	require.NoError(t, err)

	userID, err := ParseRefreshToken(raw)
	require.NoError(t, err)
	assert.Equal(t, u.UserID.String(), userID)
}

func TestParseRefreshRejectsAccessToken(t *testing.T) {
	configs.JWTSecret = "same-secret"
	configs.JWTRefreshSecret = "same-secret"
	u := testUser()

	// an access token signed with the same secret still lacks typ=refresh
	raw, err := GenerateAccessToken(u)
	require.NoError(t, err)

	_, err = ParseRefreshToken(raw)
	assert.Error(t, err)
}

func TestParseRefreshRejectsWrongSecret(t *testing.T) {
	configs.JWTRefreshSecret = "secret-a"
	raw, err := GenerateRefreshToken(testUser())
	require.NoError(t, err)

	configs.JWTRefreshSecret = "secret-b"
	_, err = ParseRefreshToken(raw)
	assert.Error(t, err)
}
