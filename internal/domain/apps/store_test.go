package apps

import (
	"context"
	"investorshield/internal/store"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_CreateAndGetByName(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(store.NewCollection[App]())

	z := &App{AppName: "Zerodha", IsLegit: true, RiskFactors: []string{}}
	require.NoError(t, repo.Create(ctx, z))
	assert.NotEmpty(t, z.ID)

	got, err := repo.GetByName(ctx, "zero")
	require.NoError(t, err)
	assert.Equal(t, z.ID, got.ID)

	_, err = repo.GetByName(ctx, "upstox")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_ReturnedRiskFactorsAreCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(store.NewCollection[App]())

	a := &App{AppName: "Shady", RiskFactors: []string{"one"}}
	require.NoError(t, repo.Create(ctx, a))

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	got.RiskFactors[0] = "mutated"

	again, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"one"}, again.RiskFactors)
}

func TestRepository_FindOrCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(store.NewCollection[App]())

	build := func() App {
		return App{AppName: "MoonProfit", Developer: "Unknown", RiskFactors: []string{"x"}}
	}

	first, created, err := repo.FindOrCreate(ctx, "MoonProfit", build)
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := repo.FindOrCreate(ctx, "moonprofit", build)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
}

func TestRepository_ListLegitimate(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(store.NewCollection[App]())

	empty, err := repo.ListLegitimate(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for _, a := range []App{
		{AppName: "QuickTrade Pro", IsLegit: false},
		{AppName: "Zerodha", IsLegit: true},
		{AppName: "Upstox", IsLegit: true},
	} {
		require.NoError(t, repo.Create(ctx, &a))
	}

	legit, err := repo.ListLegitimate(ctx)
	require.NoError(t, err)
	require.Len(t, legit, 2)
	assert.Equal(t, "Zerodha", legit[0].AppName)
	assert.Equal(t, "Upstox", legit[1].AppName)
}
