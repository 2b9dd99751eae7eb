package ranking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memCollection is an in-memory rank namespace: id -> rank.
type memCollection map[uint64]int

func (m memCollection) MaxRank(_ context.Context) (int, error) {
	max := 0
	for _, r := range m {
		if r > max {
			max = r
		}
	}
	return max, nil
}

func (m memCollection) HolderOf(_ context.Context, rank int) (uint64, bool, error) {
	for id, r := range m {
		if r == rank {
			return id, true, nil
		}
	}
	return 0, false, nil
}

func (m memCollection) SetRank(_ context.Context, id uint64, rank int) error {
	m[id] = rank
	return nil
}

func assertUniqueRanks(t *testing.T, c memCollection) {
	t.Helper()
	seen := map[int]uint64{}
	for id, r := range c {
		if other, dup := seen[r]; dup {
			t.Fatalf("rank %d held by both %d and %d", r, id, other)
		}
		seen[r] = id
	}
}

func TestNext(t *testing.T) {
	ctx := context.Background()

	c := memCollection{}
	next, err := Next(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, 1, next, "empty collection starts at 1")

	c = memCollection{1: 1, 2: 2, 3: 7}
	next, err = Next(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, 8, next, "next rank follows the current max, not the count")
}

func TestRelocate_Swap(t *testing.T) {
	ctx := context.Background()
	c := memCollection{10: 1, 20: 2, 30: 3}

	// A(order=1) moves onto B's rank 2: direct swap, C untouched.
	require.NoError(t, Relocate(ctx, c, 10, 1, 2))
	assert.Equal(t, 2, c[10])
	assert.Equal(t, 1, c[20])
	assert.Equal(t, 3, c[30])
	assertUniqueRanks(t, c)
}

func TestRelocate_NoCollision(t *testing.T) {
	ctx := context.Background()
	c := memCollection{10: 1, 20: 2}

	require.NoError(t, Relocate(ctx, c, 10, 1, 9))
	assert.Equal(t, 9, c[10])
	assert.Equal(t, 2, c[20])
	assertUniqueRanks(t, c)
}

func TestRelocate_SameRankIsNoop(t *testing.T) {
	ctx := context.Background()
	c := memCollection{10: 1, 20: 2}

	require.NoError(t, Relocate(ctx, c, 10, 1, 1))
	assert.Equal(t, 1, c[10])
	assert.Equal(t, 2, c[20])
}

func TestRanksStayUniqueAcrossSequences(t *testing.T) {
	ctx := context.Background()
	c := memCollection{}

	var ids []uint64
	for id := uint64(1); id <= 6; id++ {
		next, err := Next(ctx, c)
		require.NoError(t, err)
		require.NoError(t, c.SetRank(ctx, id, next))
		ids = append(ids, id)
		assertUniqueRanks(t, c)
	}

	moves := []struct {
		id     uint64
		target int
	}{
		{1, 6}, {6, 3}, {2, 2}, {5, 1}, {3, 4}, {4, 6},
	}
	for _, mv := range moves {
		require.NoError(t, Relocate(ctx, c, mv.id, c[mv.id], mv.target))
		assertUniqueRanks(t, c)
	}
	assert.Len(t, c, len(ids))
}
