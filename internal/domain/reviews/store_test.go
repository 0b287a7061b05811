package reviews

import (
	"context"
	"investorshield/internal/store"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_CreateStampsIDAndTime(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := NewRepository(store.NewCollection[Review](), func() time.Time { return fixed })

	rv := &Review{
		ID:        "client-chosen",
		AdvisorID: "a1",
		UserID:    "u1",
		Rating:    4,
		Comment:   "good",
		Timestamp: time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(ctx, rv))

	assert.NotEqual(t, "client-chosen", rv.ID)
	assert.Equal(t, fixed, rv.Timestamp)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, *rv, all[0])
}

func TestRepository_ListByAdvisor(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(store.NewCollection[Review](), nil)

	for _, rv := range []Review{
		{AdvisorID: "a1", Rating: 4},
		{AdvisorID: "a2", Rating: 1},
		{AdvisorID: "a1", Rating: 5},
	} {
		require.NoError(t, repo.Create(ctx, &rv))
	}

	list, err := repo.ListByAdvisor(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 4, list[0].Rating)
	assert.Equal(t, 5, list[1].Rating)

	none, err := repo.ListByAdvisor(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
