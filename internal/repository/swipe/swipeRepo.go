package swipeRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/ghaniswara/swipe-match/internal/entity"
	"github.com/go-redis/redis"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ISwipeRepo interface {
	// RecordDecision upserts the actor's decision about target. Repeating a
	// decision replaces is_like and keeps the original created_at.
	RecordDecision(ctx context.Context, actorID, targetID uint, isLike bool) (*entity.Swipe, error)

	HasLike(ctx context.Context, actorID, targetID uint) (bool, error)

	// TargetsSwipedBy returns every user the actor has liked or passed.
	TargetsSwipedBy(ctx context.Context, actorID uint) ([]uint, error)
}

type SwipeRepo struct {
	db    *gorm.DB
	cache *swipedCache
}

// NewSwipeRepo builds the ledger. A nil redis client disables the swiped set cache.
func NewSwipeRepo(db *gorm.DB, rdb *redis.Client) ISwipeRepo {
	return &SwipeRepo{
		db:    db,
		cache: newSwipedCache(rdb),
	}
}

func (s *SwipeRepo) RecordDecision(ctx context.Context, actorID, targetID uint, isLike bool) (*entity.Swipe, error) {
	if actorID == targetID {
		return nil, entity.ErrSelfSwipe
	}

	now := time.Now().UTC()
	swipe := entity.Swipe{
		ActorID:   actorID,
		TargetID:  targetID,
		IsLike:    isLike,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := s.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "actor_id"}, {Name: "target_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"is_like", "updated_at"}),
			},
			clause.Returning{},
		).
		Create(&swipe)

	if res.Error != nil {
		return nil, fmt.Errorf("record swipe: %w", res.Error)
	}

	s.cache.add(actorID, targetID)

	return &swipe, nil
}

func (s *SwipeRepo) HasLike(ctx context.Context, actorID, targetID uint) (bool, error) {
	var count int64
	res := s.db.WithContext(ctx).
		Model(&entity.Swipe{}).
		Where("actor_id = ? AND target_id = ? AND is_like = ?", actorID, targetID, true).
		Limit(1).
		Count(&count)

	if res.Error != nil {
		return false, fmt.Errorf("lookup reciprocal like: %w", res.Error)
	}
	return count > 0, nil
}

func (s *SwipeRepo) TargetsSwipedBy(ctx context.Context, actorID uint) ([]uint, error) {
	if ids, ok := s.cache.members(actorID); ok {
		return ids, nil
	}

	ids := []uint{}
	res := s.db.WithContext(ctx).
		Model(&entity.Swipe{}).
		Where("actor_id = ?", actorID).
		Order("target_id ASC").
		Pluck("target_id", &ids)

	if res.Error != nil {
		return nil, fmt.Errorf("list swiped targets: %w", res.Error)
	}

	s.cache.fill(actorID, ids)

	return ids, nil
}

// swipedCache keeps a redis set of swiped target ids per actor.
//
// The set is only trusted once it holds completeSentinel, which fill adds
// after copying the full list from postgres. Writers only ever SADD, so a
// concurrent fill can never drop a freshly recorded target.
type swipedCache struct {
	rdb *redis.Client
	ttl time.Duration
}

const completeSentinel = "0"

func newSwipedCache(rdb *redis.Client) *swipedCache {
	return &swipedCache{rdb: rdb, ttl: 30 * 24 * time.Hour}
}

func swipedKey(actorID uint) string {
	return fmt.Sprintf(":user:%d:swiped:profiles", actorID)
}

func (c *swipedCache) members(actorID uint) ([]uint, bool) {
	if c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.SMembers(swipedKey(actorID)).Result()
	if err != nil {
		log.Warn().Err(err).Uint("actor_id", actorID).Msg("read swiped cache")
		return nil, false
	}

	complete := false
	ids := make([]uint, 0, len(raw))
	for _, member := range raw {
		if member == completeSentinel {
			complete = true
			continue
		}
		var id uint
		if _, err := fmt.Sscan(member, &id); err != nil {
			return nil, false
		}
		ids = append(ids, id)
	}

	if !complete {
		return nil, false
	}
	return ids, true
}

func (c *swipedCache) fill(actorID uint, ids []uint) {
	if c.rdb == nil {
		return
	}

	members := make([]interface{}, 0, len(ids)+1)
	for _, id := range ids {
		members = append(members, id)
	}
	members = append(members, completeSentinel)

	key := swipedKey(actorID)
	pipe := c.rdb.TxPipeline()
	pipe.SAdd(key, members...)
	pipe.Expire(key, c.ttl)
	if _, err := pipe.Exec(); err != nil {
		log.Warn().Err(err).Uint("actor_id", actorID).Msg("fill swiped cache")
		c.invalidate(actorID)
	}
}

func (c *swipedCache) add(actorID, targetID uint) {
	if c.rdb == nil {
		return
	}

	key := swipedKey(actorID)
	pipe := c.rdb.TxPipeline()
	pipe.SAdd(key, targetID)
	pipe.Expire(key, c.ttl)
	if _, err := pipe.Exec(); err != nil {
		log.Warn().Err(err).Uint("actor_id", actorID).Msg("update swiped cache")
		c.invalidate(actorID)
	}
}

func (c *swipedCache) invalidate(actorID uint) {
	if err := c.rdb.Del(swipedKey(actorID)).Err(); err != nil {
		log.Error().Err(err).Uint("actor_id", actorID).Msg("invalidate swiped cache")
	}
}
