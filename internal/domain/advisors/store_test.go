package advisors

import (
	"context"
	"investorshield/internal/store"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, names ...string) Store {
	t.Helper()
	repo := NewRepository(store.NewCollection[Advisor]())
	for i, n := range names {
		a := &Advisor{
			Name:      n,
			RegNumber: store.NewNullString([]string{"INH200000001", "INH200000002", "INH200000003"}[i%3]),
		}
		require.NoError(t, repo.Create(context.Background(), a))
		require.NotEmpty(t, a.ID)
	}
	return repo
}

func TestRepository_GetByName(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t, "Rajesh Kumar", "Dr. Priya Sharma", "Amit Sharma")

	a, err := repo.GetByName(ctx, "SHARMA")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Priya Sharma", a.Name)

	_, err = repo.GetByName(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_GetByRegNumber(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t, "Rajesh Kumar", "Dr. Priya Sharma")

	a, err := repo.GetByRegNumber(ctx, "INH200000002")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Priya Sharma", a.Name)

	_, err = repo.GetByRegNumber(ctx, "inh200000002")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_GetByRegNumberIgnoresNull(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(store.NewCollection[Advisor]())
	require.NoError(t, repo.Create(ctx, &Advisor{Name: "No Reg"}))

	_, err := repo.GetByRegNumber(ctx, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t, "A", "B", "C")

	tests := []struct {
		limit int
		want  []string
	}{
		{limit: 2, want: []string{"A", "B"}},
		{limit: 10, want: []string{"A", "B", "C"}},
		{limit: 0, want: []string{}},
		{limit: -1, want: []string{}},
	}

	for _, tt := range tests {
		got, err := repo.List(ctx, tt.limit)
		require.NoError(t, err)
		names := make([]string, 0, len(got))
		for _, a := range got {
			names = append(names, a.Name)
		}
		assert.Equal(t, tt.want, names, "limit %d", tt.limit)
	}
}

func TestRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(store.NewCollection[Advisor]())

	a := &Advisor{Name: "Rajesh Kumar", TrustScore: 85}
	require.NoError(t, repo.Create(ctx, a))

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, *a, *got)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
