package feed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghaniswara/swipe-match/internal/entity"
	"github.com/ghaniswara/swipe-match/internal/testhelper"
	"github.com/ghaniswara/swipe-match/internal/usecase/feed"
)

func ids(users []entity.User) []uint {
	out := make([]uint, 0, len(users))
	for _, u := range users {
		out = append(out, u.ID)
	}
	return out
}

func TestEligibilityFilter(t *testing.T) {
	uc := feed.New(testhelper.NewMemoryStore(), testhelper.NewMemoryStore(), 0)

	tests := []struct {
		name   string
		gender entity.Gender
		want   *entity.Gender
	}{
		{"male sees female", entity.GenderMale, genderPtr(entity.GenderFemale)},
		{"female sees male", entity.GenderFemale, genderPtr(entity.GenderMale)},
		{"other is unfiltered", entity.GenderOther, nil},
		{"unset is unfiltered", entity.GenderUnset, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := uc.EligibilityFilter(&entity.User{ID: 7, Gender: tt.gender})
			assert.Equal(t, uint(7), filter.ViewerID)
			assert.Equal(t, tt.want, filter.Gender)
		})
	}
}

func genderPtr(g entity.Gender) *entity.Gender { return &g }

func TestNextBatchGenderFilter(t *testing.T) {
	store := testhelper.NewMemoryStore()
	uc := feed.New(store, store, 0)
	ctx := context.Background()

	man := store.AddUser(entity.User{Username: "m1", Gender: entity.GenderMale})
	otherMan := store.AddUser(entity.User{Username: "m2", Gender: entity.GenderMale})
	woman := store.AddUser(entity.User{Username: "w1", Gender: entity.GenderFemale})
	other := store.AddUser(entity.User{Username: "o1", Gender: entity.GenderOther})

	got, err := uc.NextBatch(ctx, &man, 0)
	require.NoError(t, err)
	assert.Equal(t, []uint{woman.ID}, ids(got))

	got, err = uc.NextBatch(ctx, &other, 0)
	require.NoError(t, err)
	assert.Equal(t, []uint{man.ID, otherMan.ID, woman.ID}, ids(got))
}

func TestNextBatchExcludesDecidedTargets(t *testing.T) {
	store := testhelper.NewMemoryStore()
	uc := feed.New(store, store, 0)
	ctx := context.Background()

	viewer := store.AddUser(entity.User{Username: "viewer", Gender: entity.GenderOther})
	liked := store.AddUser(entity.User{Username: "liked"})
	passed := store.AddUser(entity.User{Username: "passed"})
	fresh := store.AddUser(entity.User{Username: "fresh"})

	_, err := store.RecordDecision(ctx, viewer.ID, liked.ID, true)
	require.NoError(t, err)
	_, err = store.RecordDecision(ctx, viewer.ID, passed.ID, false)
	require.NoError(t, err)

	got, err := uc.NextBatch(ctx, &viewer, 0)
	require.NoError(t, err)
	assert.Equal(t, []uint{fresh.ID}, ids(got))

	// the target's own decisions about the viewer do not matter
	_, err = store.RecordDecision(ctx, fresh.ID, viewer.ID, false)
	require.NoError(t, err)

	got, err = uc.NextBatch(ctx, &viewer, 0)
	require.NoError(t, err)
	assert.Equal(t, []uint{fresh.ID}, ids(got))
}

func TestNextBatchLimits(t *testing.T) {
	store := testhelper.NewMemoryStore()
	ctx := context.Background()

	viewer := store.AddUser(entity.User{Username: "viewer"})
	for i := 0; i < 60; i++ {
		store.AddUser(entity.User{Gender: entity.GenderFemale})
	}

	uc := feed.New(store, store, 0)

	got, err := uc.NextBatch(ctx, &viewer, 0)
	require.NoError(t, err)
	assert.Len(t, got, feed.DefaultLimit)

	got, err = uc.NextBatch(ctx, &viewer, 5)
	require.NoError(t, err)
	assert.Len(t, got, 5)
	assert.Equal(t, viewer.ID+1, got[0].ID)

	got, err = uc.NextBatch(ctx, &viewer, 500)
	require.NoError(t, err)
	assert.Len(t, got, feed.MaxLimit)

	configured := feed.New(store, store, 7)
	got, err = configured.NextBatch(ctx, &viewer, -1)
	require.NoError(t, err)
	assert.Len(t, got, 7)
}

func TestNextSingle(t *testing.T) {
	store := testhelper.NewMemoryStore()
	uc := feed.New(store, store, 0)
	ctx := context.Background()

	viewer := store.AddUser(entity.User{Username: "viewer", Gender: entity.GenderFemale})
	first := store.AddUser(entity.User{Username: "a", Gender: entity.GenderMale})
	store.AddUser(entity.User{Username: "b", Gender: entity.GenderMale})

	next, err := uc.NextSingle(ctx, &viewer)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, first.ID, next.ID)

	last := store.AddUser(entity.User{Username: "c", Gender: entity.GenderMale})
	for target := first.ID; target <= last.ID; target++ {
		_, err := store.RecordDecision(ctx, viewer.ID, target, false)
		require.NoError(t, err)
	}

	next, err = uc.NextSingle(ctx, &viewer)
	require.NoError(t, err)
	assert.Nil(t, next)
}
