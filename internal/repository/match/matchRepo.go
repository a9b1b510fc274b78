package matchRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/ghaniswara/swipe-match/internal/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IMatchRepo interface {
	// CreateOrGet returns the match for the unordered pair, creating it when
	// missing. Concurrent calls for (a, b) and (b, a) resolve to one row.
	CreateOrGet(ctx context.Context, userA, userB uint) (*entity.Match, error)

	// ListForUser returns the user's matches, newest first, with both sides loaded.
	ListForUser(ctx context.Context, userID uint) ([]entity.Match, error)
}

type MatchRepo struct {
	db *gorm.DB
}

func NewMatchRepo(db *gorm.DB) IMatchRepo {
	return &MatchRepo{
		db: db,
	}
}

func (m *MatchRepo) CreateOrGet(ctx context.Context, userA, userB uint) (*entity.Match, error) {
	if userA == userB {
		return nil, entity.ErrSelfMatch
	}

	low, high := entity.CanonicalPair(userA, userB)

	match := entity.Match{
		UserLowID:  low,
		UserHighID: high,
		CreatedAt:  time.Now().UTC(),
	}

	res := m.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_low_id"}, {Name: "user_high_id"}},
			DoNothing: true,
		}).
		Create(&match)

	if res.Error != nil {
		return nil, fmt.Errorf("create match: %w", res.Error)
	}

	if res.RowsAffected == 1 {
		return &match, nil
	}

	// Another request already holds the pair.
	var existing entity.Match
	res = m.db.WithContext(ctx).
		Where("user_low_id = ? AND user_high_id = ?", low, high).
		First(&existing)

	if res.Error != nil {
		return nil, fmt.Errorf("fetch existing match: %w", res.Error)
	}
	return &existing, nil
}

func (m *MatchRepo) ListForUser(ctx context.Context, userID uint) ([]entity.Match, error) {
	matches := []entity.Match{}

	res := m.db.WithContext(ctx).
		Preload("UserLow").
		Preload("UserHigh").
		Where("user_low_id = ? OR user_high_id = ?", userID, userID).
		Order("created_at DESC, id DESC").
		Find(&matches)

	if res.Error != nil {
		return nil, fmt.Errorf("list matches: %w", res.Error)
	}
	return matches, nil
}
