package authUseCase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghaniswara/swipe-match/internal/entity"
	"github.com/ghaniswara/swipe-match/internal/testhelper"
	authUseCase "github.com/ghaniswara/swipe-match/internal/usecase/auth"
	"github.com/ghaniswara/swipe-match/pkg/jwt"
	"github.com/ghaniswara/swipe-match/pkg/likes"
)

func signUpRequest() entity.CreateUserRequest {
	return entity.CreateUserRequest{
		Username:  "jane",
		Email:     "jane@example.com",
		Password:  "correct horse",
		FirstName: "Jane",
		LastName:  "Doe",
		Bio:       "hello",
		Gender:    entity.GenderFemale,
		BirthDate: "1995-06-15",
		Likes:     likes.FromText("Food, GYM, food"),
	}
}

func TestSignupUser(t *testing.T) {
	store := testhelper.NewMemoryStore()
	tokens := jwt.New("secret", time.Hour)
	uc := authUseCase.New(store, tokens)

	user, token, err := uc.SignupUser(context.Background(), signUpRequest())
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "correct horse", user.Password)
	assert.Equal(t, []string{"food", "gym"}, []string(user.Likes))
	require.NotNil(t, user.BirthDate)
	assert.Equal(t, "1995-06-15", user.BirthDate.Format(entity.DateLayout))

	claims, err := tokens.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "jane", claims.Username)
}

func TestSignupUserDuplicate(t *testing.T) {
	store := testhelper.NewMemoryStore()
	uc := authUseCase.New(store, jwt.New("secret", time.Hour))

	_, _, err := uc.SignupUser(context.Background(), signUpRequest())
	require.NoError(t, err)

	_, _, err = uc.SignupUser(context.Background(), signUpRequest())
	assert.ErrorIs(t, err, entity.ErrUserExists)
}

func TestSignIn(t *testing.T) {
	store := testhelper.NewMemoryStore()
	tokens := jwt.New("secret", time.Hour)
	uc := authUseCase.New(store, tokens)
	ctx := context.Background()

	user, _, err := uc.SignupUser(ctx, signUpRequest())
	require.NoError(t, err)

	t.Run("by email", func(t *testing.T) {
		token, err := uc.SignIn(ctx, "jane@example.com", "", "correct horse")
		require.NoError(t, err)
		claims, err := tokens.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
	})

	t.Run("by username", func(t *testing.T) {
		_, err := uc.SignIn(ctx, "", "jane", "correct horse")
		assert.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := uc.SignIn(ctx, "", "jane", "wrong password")
		assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := uc.SignIn(ctx, "nobody@example.com", "", "correct horse")
		assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
	})
}
