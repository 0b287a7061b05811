package storage

import (
	"context"
	"investorshield/internal/domain/reviews"
	"investorshield/internal/domain/users"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeededContainer(t *testing.T) {
	ctx := context.Background()
	c, err := NewSeededContainer(ctx)
	require.NoError(t, err)

	advisors, err := c.Advisors.All(ctx)
	require.NoError(t, err)
	require.Len(t, advisors, 3)
	assert.Equal(t, "Rajesh Kumar", advisors[0].Name)
	assert.Equal(t, "Dr. Priya Sharma", advisors[1].Name)
	assert.Equal(t, "Amit Sharma", advisors[2].Name)

	legit, err := c.Apps.ListLegitimate(ctx)
	require.NoError(t, err)
	require.Len(t, legit, 2)
	assert.Equal(t, "Zerodha", legit[0].AppName)
	assert.Equal(t, "Upstox", legit[1].AppName)

	quick, err := c.Apps.GetByName(ctx, "quicktrade")
	require.NoError(t, err)
	assert.False(t, quick.IsLegit)
	assert.Len(t, quick.RiskFactors, 3)

	rajeshReviews, err := c.Reviews.ListByAdvisor(ctx, advisors[0].ID)
	require.NoError(t, err)
	require.Len(t, rajeshReviews, 2)
	for _, rv := range rajeshReviews {
		assert.True(t, rv.IsVerified)
		_, err := c.Users.GetByID(ctx, rv.UserID)
		assert.ErrorIs(t, err, users.ErrNotFound)
	}
}

func TestContainer_WithClock(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	c := NewContainer(WithClock(func() time.Time { return fixed }))

	rv := &reviews.Review{AdvisorID: "a", UserID: "u", Rating: 3, Comment: "ok"}
	require.NoError(t, c.Reviews.Create(ctx, rv))
	assert.Equal(t, fixed, rv.Timestamp)

	all, err := c.Reviews.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, *rv, all[0])
}

func TestContainer_SeedsAreIndependent(t *testing.T) {
	ctx := context.Background()
	a, err := NewSeededContainer(ctx)
	require.NoError(t, err)
	b, err := NewSeededContainer(ctx)
	require.NoError(t, err)

	require.NoError(t, a.Reviews.Create(ctx, &reviews.Review{AdvisorID: "x", UserID: "y", Rating: 1, Comment: "bad"}))

	aAll, err := a.Reviews.All(ctx)
	require.NoError(t, err)
	bAll, err := b.Reviews.All(ctx)
	require.NoError(t, err)
	assert.Len(t, aAll, 3)
	assert.Len(t, bAll, 2)
}
