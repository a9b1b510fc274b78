package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghaniswara/swipe-match/internal/entity"
)

func TestAge(t *testing.T) {
	born := time.Date(2000, time.June, 15, 0, 0, 0, 0, time.UTC)
	u := entity.User{BirthDate: &born}

	before := u.Age(time.Date(2026, time.June, 14, 12, 0, 0, 0, time.UTC))
	on := u.Age(time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC))

	require.NotNil(t, before)
	require.NotNil(t, on)
	assert.Equal(t, 25, *before)
	assert.Equal(t, 26, *on)

	assert.Nil(t, (&entity.User{}).Age(time.Now()))
}

func TestGenderComplement(t *testing.T) {
	g, ok := entity.GenderMale.Complement()
	assert.True(t, ok)
	assert.Equal(t, entity.GenderFemale, g)

	g, ok = entity.GenderFemale.Complement()
	assert.True(t, ok)
	assert.Equal(t, entity.GenderMale, g)

	_, ok = entity.GenderOther.Complement()
	assert.False(t, ok)
	_, ok = entity.GenderUnset.Complement()
	assert.False(t, ok)
}

func TestCandidateFilterAllows(t *testing.T) {
	female := entity.GenderFemale
	f := entity.CandidateFilter{ViewerID: 1, Gender: &female}

	assert.False(t, f.Allows(entity.User{ID: 1, Gender: entity.GenderFemale}))
	assert.True(t, f.Allows(entity.User{ID: 2, Gender: entity.GenderFemale}))
	assert.False(t, f.Allows(entity.User{ID: 3, Gender: entity.GenderMale}))

	open := entity.CandidateFilter{ViewerID: 1}
	assert.True(t, open.Allows(entity.User{ID: 3, Gender: entity.GenderMale}))
	assert.True(t, open.Allows(entity.User{ID: 4}))
}

func TestCanonicalPair(t *testing.T) {
	low, high := entity.CanonicalPair(9, 4)
	assert.Equal(t, uint(4), low)
	assert.Equal(t, uint(9), high)

	low, high = entity.CanonicalPair(4, 9)
	assert.Equal(t, uint(4), low)
	assert.Equal(t, uint(9), high)
}

func TestMatchOther(t *testing.T) {
	m := entity.Match{
		UserLowID:  1,
		UserHighID: 2,
		UserLow:    entity.User{ID: 1, Username: "low"},
		UserHigh:   entity.User{ID: 2, Username: "high"},
	}
	assert.Equal(t, "high", m.Other(1).Username)
	assert.Equal(t, "low", m.Other(2).Username)
}

func TestNewProfileResponse(t *testing.T) {
	born := time.Date(1990, time.January, 2, 0, 0, 0, 0, time.UTC)
	resp := entity.NewProfileResponse(entity.User{ID: 5, Username: "u", BirthDate: &born},
		time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))

	require.NotNil(t, resp.BirthDate)
	assert.Equal(t, "1990-01-02", *resp.BirthDate)
	require.NotNil(t, resp.Age)
	assert.Equal(t, 35, *resp.Age)
	assert.Equal(t, []string{}, resp.Likes)
}
