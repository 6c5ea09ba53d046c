package repo_test

import (
	"testing"

	"github.com/rogerio-castellano/inventory-manager/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductStore_NotifiesAfterEachMutation(t *testing.T) {
	s := repo.NewProductStore()
	var events []repo.Event
	s.Subscribe(func(ev repo.Event) { events = append(events, ev) })

	_, err := s.Add(5, "Eggs", 2, 0.5)
	require.NoError(t, err)
	_, err = s.UpdateByID(5, "Eggs", 3, 0.5)
	require.NoError(t, err)
	require.NoError(t, s.DeleteByID(5))
	s.SetLowStockThreshold(-1)
	s.ClearAll()
	s.ResetSample()

	kinds := make([]repo.EventKind, len(events))
	for i, ev := range events {
		kinds[i] = ev.Kind
	}
	assert.Equal(t, []repo.EventKind{
		repo.EventProductAdded,
		repo.EventProductUpdated,
		repo.EventProductDeleted,
		repo.EventThresholdChanged,
		repo.EventProductsCleared,
		repo.EventProductsReset,
	}, kinds)

	assert.Equal(t, 5, events[0].ProductID)
	assert.Equal(t, 5, events[0].Metrics.TotalProducts)
	assert.Equal(t, "Eggs", events[0].Metrics.NewestItem)
	assert.Equal(t, 0, events[3].Metrics.Threshold)
	assert.Equal(t, 0, events[4].Metrics.TotalProducts)
	assert.Equal(t, 4, events[5].Metrics.TotalProducts)
}

func TestProductStore_FailedMutationsDoNotNotify(t *testing.T) {
	s := repo.NewProductStore()
	calls := 0
	s.Subscribe(func(repo.Event) { calls++ })

	_, _ = s.Add(1, "Dup", 1, 1)
	_, _ = s.Add(0, "Bad", 1, 1)
	_, _ = s.UpdateByID(99, "Missing", 1, 1)
	_ = s.DeleteByID(99)

	assert.Zero(t, calls)
}

func TestProductStore_ListenerMayReadStore(t *testing.T) {
	s := repo.NewProductStore()
	var seen int
	s.Subscribe(func(repo.Event) { seen = s.TotalCount() })

	_, err := s.Add(9, "Jam", 1, 4)

	require.NoError(t, err)
	assert.Equal(t, 5, seen)
}

func TestProductStore_EventsAreNumbered(t *testing.T) {
	s := repo.NewProductStore()
	var seqs []uint64
	s.Subscribe(func(ev repo.Event) { seqs = append(seqs, ev.Seq) })

	_, err := s.Add(5, "Eggs", 2, 0.5)
	require.NoError(t, err)
	_, _ = s.Add(5, "Eggs", 2, 0.5)
	s.SetLowStockThreshold(3)
	s.ClearAll()

	assert.Equal(t, []uint64{1, 2, 3}, seqs)
}
