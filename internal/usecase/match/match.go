package match

import (
	"context"
	"errors"
	"fmt"

	"github.com/ghaniswara/swipe-match/internal/entity"
	matchRepo "github.com/ghaniswara/swipe-match/internal/repository/match"
	swipeRepo "github.com/ghaniswara/swipe-match/internal/repository/swipe"
	userRepo "github.com/ghaniswara/swipe-match/internal/repository/user"
	"github.com/ghaniswara/swipe-match/internal/usecase/feed"
	"github.com/rs/zerolog/log"
)

type IMatchUseCase interface {
	Swipe(ctx context.Context, actorID, targetID uint, decision entity.Decision) (*entity.SwipeOutcome, error)
	ListMatches(ctx context.Context, userID uint) ([]entity.MatchView, error)
}

type matchUseCase struct {
	userRepo  userRepo.IUserRepo
	swipeRepo swipeRepo.ISwipeRepo
	matchRepo matchRepo.IMatchRepo
	feed      feed.IFeedUseCase
}

func NewMatchUseCase(
	userRepo userRepo.IUserRepo,
	swipeRepo swipeRepo.ISwipeRepo,
	matchRepo matchRepo.IMatchRepo,
	feed feed.IFeedUseCase,
) IMatchUseCase {
	return &matchUseCase{
		userRepo:  userRepo,
		swipeRepo: swipeRepo,
		matchRepo: matchRepo,
		feed:      feed,
	}
}

// Swipe records the actor's decision, creates the match when the like is
// mutual and returns the next feed candidate.
//
// The statements are not wrapped in a transaction. The decision is committed
// before the reciprocal like is read, so of two simultaneous mutual likes at
// least one observes the other; CreateOrGet settles the rest.
func (m *matchUseCase) Swipe(
	ctx context.Context,
	actorID uint,
	targetID uint,
	decision entity.Decision,
) (*entity.SwipeOutcome, error) {
	if actorID == targetID {
		return nil, entity.ErrSelfSwipe
	}

	actor, err := m.userRepo.GetUserByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("load actor %d: %w", actorID, err)
	}

	if _, err := m.userRepo.GetUserByID(ctx, targetID); err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: %w", entity.ErrInvalidTarget, err)
		}
		return nil, fmt.Errorf("load target %d: %w", targetID, err)
	}

	isLike := decision == entity.DecisionLike
	if _, err := m.swipeRepo.RecordDecision(ctx, actorID, targetID, isLike); err != nil {
		return nil, err
	}

	outcome := &entity.SwipeOutcome{}

	if isLike {
		mutual, err := m.swipeRepo.HasLike(ctx, targetID, actorID)
		if err != nil {
			return nil, err
		}

		if mutual {
			match, err := m.matchRepo.CreateOrGet(ctx, actorID, targetID)
			if err != nil {
				return nil, err
			}
			outcome.Matched = true
			outcome.MatchID = &match.ID

			log.Ctx(ctx).Debug().
				Uint("match_id", match.ID).
				Uint("actor_id", actorID).
				Uint("target_id", targetID).
				Msg("match created")
		}
	}

	next, err := m.feed.NextSingle(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("next candidate: %w", err)
	}
	outcome.Next = next

	return outcome, nil
}

func (m *matchUseCase) ListMatches(ctx context.Context, userID uint) ([]entity.MatchView, error) {
	matches, err := m.matchRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]entity.MatchView, 0, len(matches))
	for i := range matches {
		views = append(views, entity.MatchView{
			ID:        matches[i].ID,
			OtherUser: matches[i].Other(userID),
			CreatedAt: matches[i].CreatedAt,
		})
	}
	return views, nil
}
