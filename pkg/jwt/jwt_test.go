package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghaniswara/swipe-match/pkg/jwt"
)

func TestCreateAndValidate(t *testing.T) {
	m := jwt.New("secret", time.Hour)

	token, err := m.CreateToken(42, "alice")
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestValidateRejectsForeignSecret(t *testing.T) {
	token, err := jwt.New("one", time.Hour).CreateToken(1, "a")
	require.NoError(t, err)

	_, err = jwt.New("two", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidateRejectsExpired(t *testing.T) {
	expired := jwt.New("secret", time.Nanosecond)
	token, err := expired.CreateToken(1, "a")
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)

	_, err = expired.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := jwt.New("secret", time.Hour).ValidateToken("not.a.token")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
