package feed

import (
	"context"
	"fmt"

	"github.com/ghaniswara/swipe-match/internal/entity"
	swipeRepo "github.com/ghaniswara/swipe-match/internal/repository/swipe"
	userRepo "github.com/ghaniswara/swipe-match/internal/repository/user"
)

const (
	DefaultLimit = 20
	MaxLimit     = 50
)

type IFeedUseCase interface {
	EligibilityFilter(viewer *entity.User) entity.CandidateFilter
	NextBatch(ctx context.Context, viewer *entity.User, limit int) ([]entity.User, error)
	NextSingle(ctx context.Context, viewer *entity.User) (*entity.User, error)
}

type feedUseCase struct {
	userRepo     userRepo.IUserRepo
	swipeRepo    swipeRepo.ISwipeRepo
	defaultLimit int
}

// New builds the feed. defaultLimit applies when callers pass no limit and
// falls back to DefaultLimit when not positive.
func New(userRepo userRepo.IUserRepo, swipeRepo swipeRepo.ISwipeRepo, defaultLimit int) IFeedUseCase {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	if defaultLimit > MaxLimit {
		defaultLimit = MaxLimit
	}
	return &feedUseCase{
		userRepo:     userRepo,
		swipeRepo:    swipeRepo,
		defaultLimit: defaultLimit,
	}
}

// EligibilityFilter pairs male with female viewers. Anyone else sees every gender.
func (f *feedUseCase) EligibilityFilter(viewer *entity.User) entity.CandidateFilter {
	filter := entity.CandidateFilter{ViewerID: viewer.ID}
	if gender, ok := viewer.Gender.Complement(); ok {
		filter.Gender = &gender
	}
	return filter
}

func (f *feedUseCase) NextBatch(ctx context.Context, viewer *entity.User, limit int) ([]entity.User, error) {
	if limit <= 0 {
		limit = f.defaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	swiped, err := f.swipeRepo.TargetsSwipedBy(ctx, viewer.ID)
	if err != nil {
		return nil, err
	}

	candidates, err := f.userRepo.ListCandidates(ctx, f.EligibilityFilter(viewer), swiped, limit)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	return candidates, nil
}

func (f *feedUseCase) NextSingle(ctx context.Context, viewer *entity.User) (*entity.User, error) {
	candidates, err := f.NextBatch(ctx, viewer, 1)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	return &candidates[0], nil
}
