package profile

import (
	"context"
	"time"

	"github.com/ghaniswara/swipe-match/internal/entity"
	userRepo "github.com/ghaniswara/swipe-match/internal/repository/user"
	"github.com/ghaniswara/swipe-match/pkg/likes"
)

type IProfileUseCase interface {
	GetProfile(ctx context.Context, userID uint) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uint, request entity.UpdateProfileRequest) (*entity.User, error)
}

type profileUseCase struct {
	userRepo userRepo.IUserRepo
}

func NewProfileUseCase(userRepo userRepo.IUserRepo) IProfileUseCase {
	return &profileUseCase{
		userRepo: userRepo,
	}
}

func (p *profileUseCase) GetProfile(ctx context.Context, userID uint) (*entity.User, error) {
	return p.userRepo.GetUserByID(ctx, userID)
}

// UpdateProfile applies the non-nil fields of request.
func (p *profileUseCase) UpdateProfile(ctx context.Context, userID uint, request entity.UpdateProfileRequest) (*entity.User, error) {
	user, err := p.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if request.FirstName != nil {
		user.FirstName = *request.FirstName
	}
	if request.LastName != nil {
		user.LastName = *request.LastName
	}
	if request.Bio != nil {
		user.Bio = *request.Bio
	}
	if request.Gender != nil {
		user.Gender = *request.Gender
	}
	if request.CoverImageURL != nil {
		user.CoverImageURL = *request.CoverImageURL
	}

	if request.BirthDate != nil {
		born, err := time.Parse(entity.DateLayout, *request.BirthDate)
		if err != nil {
			return nil, &entity.ValidationError{Problems: map[string][]string{"birthDate": {"Birth date must be formatted YYYY-MM-DD"}}}
		}
		user.BirthDate = &born
	}

	if request.Likes != nil {
		normalized, err := likes.Normalize(*request.Likes)
		if err != nil {
			return nil, &entity.ValidationError{Problems: map[string][]string{"likes": {err.Error()}}}
		}
		user.Likes = normalized
	}

	if err := p.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
