package testhelper

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ghaniswara/swipe-match/internal/entity"
)

type pairKey struct{ a, b uint }

// MemoryStore is an in-memory stand-in for the user, swipe and match
// repositories with the same contracts as the postgres ones.
type MemoryStore struct {
	mu      sync.Mutex
	users   map[uint]entity.User
	swipes  map[pairKey]entity.Swipe
	matches map[pairKey]entity.Match
	nextID  uint
	matchID uint

	// CreateOrGetErr, when set, is returned by the next CreateOrGet call.
	CreateOrGetErr error
	// ListCandidatesCalls counts ListCandidates invocations.
	ListCandidatesCalls int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:   map[uint]entity.User{},
		swipes:  map[pairKey]entity.Swipe{},
		matches: map[pairKey]entity.Match{},
	}
}

// AddUser stores u with the next id and returns it.
func (s *MemoryStore) AddUser(u entity.User) entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	u.ID = s.nextID
	s.users[u.ID] = u
	return u
}

func (s *MemoryStore) SwipeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.swipes)
}

func (s *MemoryStore) MatchCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.matches)
}

func (s *MemoryStore) Swipe(actorID, targetID uint) (entity.Swipe, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sw, ok := s.swipes[pairKey{actorID, targetID}]
	return sw, ok
}

func (s *MemoryStore) CreateUser(_ context.Context, user *entity.User) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, entity.ErrUserExists
		}
	}
	s.nextID++
	user.ID = s.nextID
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	s.users[user.ID] = *user
	return user, nil
}

func (s *MemoryStore) GetUserByID(_ context.Context, id uint) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, entity.ErrUserNotFound
	}
	return &u, nil
}

func (s *MemoryStore) GetUserByUnameOrEmail(_ context.Context, email, uname string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if (email != "" && u.Email == email) || (uname != "" && u.Username == uname) {
			return &u, nil
		}
	}
	return nil, entity.ErrUserNotFound
}

func (s *MemoryStore) UpdateUser(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID]; !ok {
		return entity.ErrUserNotFound
	}
	user.UpdatedAt = time.Now().UTC()
	s.users[user.ID] = *user
	return nil
}

func (s *MemoryStore) ListCandidates(_ context.Context, filter entity.CandidateFilter, excludeIDs []uint, limit int) ([]entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ListCandidatesCalls++

	excluded := make(map[uint]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}

	out := []entity.User{}
	for _, u := range s.users {
		if _, skip := excluded[u.ID]; skip || !filter.Allows(u) {
			continue
		}
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemoryStore) RecordDecision(_ context.Context, actorID, targetID uint, isLike bool) (*entity.Swipe, error) {
	if actorID == targetID {
		return nil, entity.ErrSelfSwipe
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	key := pairKey{actorID, targetID}
	sw, ok := s.swipes[key]
	if !ok {
		sw = entity.Swipe{ActorID: actorID, TargetID: targetID, CreatedAt: now}
	}
	sw.IsLike = isLike
	sw.UpdatedAt = now
	s.swipes[key] = sw
	return &sw, nil
}

func (s *MemoryStore) HasLike(_ context.Context, actorID, targetID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sw, ok := s.swipes[pairKey{actorID, targetID}]
	return ok && sw.IsLike, nil
}

func (s *MemoryStore) TargetsSwipedBy(_ context.Context, actorID uint) ([]uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := []uint{}
	for key := range s.swipes {
		if key.a == actorID {
			ids = append(ids, key.b)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (s *MemoryStore) CreateOrGet(_ context.Context, userA, userB uint) (*entity.Match, error) {
	if userA == userB {
		return nil, entity.ErrSelfMatch
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.CreateOrGetErr; err != nil {
		s.CreateOrGetErr = nil
		return nil, err
	}

	low, high := entity.CanonicalPair(userA, userB)
	key := pairKey{low, high}
	if m, ok := s.matches[key]; ok {
		return &m, nil
	}

	s.matchID++
	m := entity.Match{ID: s.matchID, UserLowID: low, UserHighID: high, CreatedAt: time.Now().UTC()}
	s.matches[key] = m
	return &m, nil
}

func (s *MemoryStore) ListForUser(_ context.Context, userID uint) ([]entity.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []entity.Match{}
	for _, m := range s.matches {
		if m.UserLowID != userID && m.UserHighID != userID {
			continue
		}
		m.UserLow = s.users[m.UserLowID]
		m.UserHigh = s.users[m.UserHighID]
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
