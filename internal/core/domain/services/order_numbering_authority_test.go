package services_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/services"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSequenceStore is a mutex-guarded in-memory day counter, mirroring the
// linearization contract a real store must provide.
type fakeSequenceStore struct {
	mu       sync.Mutex
	counters map[string]int
	err      error
}

func newFakeSequenceStore() *fakeSequenceStore {
	return &fakeSequenceStore{counters: make(map[string]int)}
}

func (s *fakeSequenceStore) NextDailySequence(_ context.Context, day time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return 0, s.err
	}

	key := day.Format("20060102")
	s.counters[key]++
	return s.counters[key], nil
}

func TestOrderNumberingAuthority_Next(t *testing.T) {
	day := time.Date(2025, 8, 31, 15, 0, 0, 0, time.UTC)

	t.Run("first_number_of_a_day_is_00001", func(t *testing.T) {
		authority, err := services.NewOrderNumberingAuthority(newFakeSequenceStore())
		require.NoError(t, err)

		number, err := authority.Next(context.Background(), day)

		require.NoError(t, err)
		assert.Equal(t, "ORD-20250831-00001", number.String())
	})

	t.Run("numbers_increase_within_a_day", func(t *testing.T) {
		authority, err := services.NewOrderNumberingAuthority(newFakeSequenceStore())
		require.NoError(t, err)

		first, err := authority.Next(context.Background(), day)
		require.NoError(t, err)
		second, err := authority.Next(context.Background(), day)
		require.NoError(t, err)

		assert.Equal(t, "ORD-20250831-00001", first.String())
		assert.Equal(t, "ORD-20250831-00002", second.String())
	})

	t.Run("sequence_resets_on_a_new_day", func(t *testing.T) {
		authority, err := services.NewOrderNumberingAuthority(newFakeSequenceStore())
		require.NoError(t, err)

		_, err = authority.Next(context.Background(), day)
		require.NoError(t, err)
		nextDay, err := authority.Next(context.Background(), day.AddDate(0, 0, 1))
		require.NoError(t, err)

		assert.Equal(t, "ORD-20250901-00001", nextDay.String())
	})

	t.Run("concurrent_callers_get_distinct_contiguous_numbers", func(t *testing.T) {
		const callers = 50

		authority, err := services.NewOrderNumberingAuthority(newFakeSequenceStore())
		require.NoError(t, err)

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			numbers []string
		)
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				number, err := authority.Next(context.Background(), day)
				require.NoError(t, err)

				mu.Lock()
				numbers = append(numbers, number.String())
				mu.Unlock()
			}()
		}
		wg.Wait()

		require.Len(t, numbers, callers)
		sort.Strings(numbers)
		for i := 1; i < callers; i++ {
			assert.NotEqual(t, numbers[i-1], numbers[i], "numbers must be pairwise distinct")
		}
		assert.Equal(t, "ORD-20250831-00001", numbers[0])
		assert.Equal(t, "ORD-20250831-00050", numbers[callers-1])
	})

	t.Run("sequence_exhaustion_is_fatal", func(t *testing.T) {
		store := newFakeSequenceStore()
		store.counters[day.Format("20060102")] = order.MaxDailySequence
		authority, err := services.NewOrderNumberingAuthority(store)
		require.NoError(t, err)

		_, err = authority.Next(context.Background(), day)

		require.ErrorIs(t, err, errs.ErrSequenceExhausted)
	})

	t.Run("store_errors_propagate", func(t *testing.T) {
		store := newFakeSequenceStore()
		store.err = errors.New("connection refused")
		authority, err := services.NewOrderNumberingAuthority(store)
		require.NoError(t, err)

		_, err = authority.Next(context.Background(), day)

		require.ErrorContains(t, err, "connection refused")
	})
}

func TestOrderNumberingAuthority_Ensure(t *testing.T) {
	day := time.Date(2025, 8, 31, 15, 0, 0, 0, time.UTC)

	t.Run("keeps_an_explicit_number", func(t *testing.T) {
		store := newFakeSequenceStore()
		authority, err := services.NewOrderNumberingAuthority(store)
		require.NoError(t, err)
		explicit, err := order.NumberFromString("ORD-20240101-00777")
		require.NoError(t, err)

		number, err := authority.Ensure(context.Background(), explicit, day)

		require.NoError(t, err)
		assert.True(t, number.IsEqual(explicit))
		assert.Empty(t, store.counters, "the store must not be touched")
	})

	t.Run("generates_when_no_number_is_supplied", func(t *testing.T) {
		authority, err := services.NewOrderNumberingAuthority(newFakeSequenceStore())
		require.NoError(t, err)

		number, err := authority.Ensure(context.Background(), order.Number{}, day)

		require.NoError(t, err)
		assert.Equal(t, "ORD-20250831-00001", number.String())
	})
}

func TestNewOrderNumberingAuthority(t *testing.T) {
	_, err := services.NewOrderNumberingAuthority(nil)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
