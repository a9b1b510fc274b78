package authUseCase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ghaniswara/swipe-match/internal/entity"
	userRepo "github.com/ghaniswara/swipe-match/internal/repository/user"
	"github.com/ghaniswara/swipe-match/pkg/jwt"
	"github.com/ghaniswara/swipe-match/pkg/likes"
	"golang.org/x/crypto/bcrypt"
)

const hashCost = 12

type IAuthUseCase interface {
	SignupUser(ctx context.Context, request entity.CreateUserRequest) (*entity.User, string, error)
	SignIn(ctx context.Context, email, username, password string) (string, error)
}

type authUseCase struct {
	userRepo userRepo.IUserRepo
	tokens   *jwt.Manager
}

func New(userRepo userRepo.IUserRepo, tokens *jwt.Manager) IAuthUseCase {
	return &authUseCase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// SignupUser stores a validated registration and returns the user with a
// freshly issued token.
func (p *authUseCase) SignupUser(ctx context.Context, authData entity.CreateUserRequest) (*entity.User, string, error) {
	normalized, err := likes.Normalize(authData.Likes)
	if err != nil {
		return nil, "", &entity.ValidationError{Problems: map[string][]string{"likes": {err.Error()}}}
	}

	born, err := time.Parse(entity.DateLayout, authData.BirthDate)
	if err != nil {
		return nil, "", &entity.ValidationError{Problems: map[string][]string{"birthDate": {"Birth date must be formatted YYYY-MM-DD"}}}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(authData.Password), hashCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := entity.User{
		Username:      authData.Username,
		Email:         authData.Email,
		Password:      string(hashedPassword),
		FirstName:     authData.FirstName,
		LastName:      authData.LastName,
		Bio:           authData.Bio,
		Gender:        authData.Gender,
		BirthDate:     &born,
		CoverImageURL: authData.CoverImageURL,
		Likes:         normalized,
	}

	created, err := p.userRepo.CreateUser(ctx, &user)
	if err != nil {
		return nil, "", err
	}

	token, err := p.tokens.CreateToken(created.ID, created.Username)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return created, token, nil
}

func (p *authUseCase) SignIn(ctx context.Context, email, username, password string) (string, error) {
	user, err := p.userRepo.GetUserByUnameOrEmail(ctx, email, username)
	if errors.Is(err, entity.ErrUserNotFound) {
		return "", entity.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", entity.ErrInvalidCredentials
	}

	token, err := p.tokens.CreateToken(user.ID, user.Username)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
