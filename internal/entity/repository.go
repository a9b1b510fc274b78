package entity

import "time"

// Swipe is one directional decision, unique per (actor, target).
type Swipe struct {
	ActorID   uint      `gorm:"column:actor_id;not null;primaryKey"`
	TargetID  uint      `gorm:"column:target_id;not null;primaryKey"`
	IsLike    bool      `gorm:"column:is_like;not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// Match is stored once per unordered pair with UserLowID < UserHighID.
type Match struct {
	ID         uint      `gorm:"primaryKey;column:id"`
	UserLowID  uint      `gorm:"column:user_low_id;not null;uniqueIndex:idx_matches_pair"`
	UserHighID uint      `gorm:"column:user_high_id;not null;uniqueIndex:idx_matches_pair"`
	CreatedAt  time.Time `gorm:"column:created_at;not null"`

	UserLow  User `gorm:"foreignKey:UserLowID"`
	UserHigh User `gorm:"foreignKey:UserHighID"`
}

// Other returns the side of the pair that is not userID.
func (m *Match) Other(userID uint) User {
	if m.UserLowID == userID {
		return m.UserHigh
	}
	return m.UserLow
}

func CanonicalPair(a, b uint) (low, high uint) {
	if a < b {
		return a, b
	}
	return b, a
}

type Decision uint

const (
	DecisionLike Decision = iota + 1
	DecisionPass
)

func (d Decision) String() string {
	switch d {
	case DecisionLike:
		return "like"
	case DecisionPass:
		return "pass"
	default:
		return "unknown"
	}
}

func ParseDecision(s string) (Decision, bool) {
	switch s {
	case "like":
		return DecisionLike, true
	case "pass":
		return DecisionPass, true
	default:
		return 0, false
	}
}

type SwipeOutcome struct {
	Matched bool
	MatchID *uint
	Next    *User
}

type MatchView struct {
	ID        uint
	OtherUser User
	CreatedAt time.Time
}
