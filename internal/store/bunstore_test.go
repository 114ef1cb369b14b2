package store_test

import (
	"fmt"
	"testing"

	"adventureland/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBunStore(t *testing.T) *store.BunStore {
	t.Helper()
	// One in-memory sqlite database per test, shared across connections.
	bunDB, err := store.OpenSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { bunDB.Close() })

	bs, err := store.NewBunStore(bunDB)
	require.NoError(t, err)
	return bs
}

func TestBunStoreMissingSlot(t *testing.T) {
	bs := setupBunStore(t)

	data, err := bs.Load(store.SlotDashboard)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestBunStoreRoundtrip(t *testing.T) {
	bs := setupBunStore(t)

	data, err := store.Encode([]string{"Single Day Pass", "VIP Experience"})
	require.NoError(t, err)
	require.NoError(t, bs.Save(store.SlotTickets, data))

	loaded, err := bs.Load(store.SlotTickets)
	require.NoError(t, err)
	var restored []string
	require.NoError(t, store.Decode(loaded, &restored))
	assert.Equal(t, []string{"Single Day Pass", "VIP Experience"}, restored)
}

func TestBunStoreUpsert(t *testing.T) {
	bs := setupBunStore(t)

	for _, value := range []int{1, 2} {
		data, err := store.Encode(value)
		require.NoError(t, err)
		require.NoError(t, bs.Save(store.SlotCounters, data))
	}

	loaded, err := bs.Load(store.SlotCounters)
	require.NoError(t, err)
	var restored int
	require.NoError(t, store.Decode(loaded, &restored))
	assert.Equal(t, 2, restored)
}

func TestBunStoreSaveAllCommitsEverySlot(t *testing.T) {
	bs := setupBunStore(t)

	customers, err := store.Encode(map[string]string{"a@x.com": "Alice"})
	require.NoError(t, err)
	dashboard, err := store.Encode(map[string]int{"Single Day Pass": 2})
	require.NoError(t, err)
	require.NoError(t, bs.SaveAll(map[string][]byte{
		store.SlotCustomers: customers,
		store.SlotDashboard: dashboard,
	}))

	for _, slot := range []string{store.SlotCustomers, store.SlotDashboard} {
		data, err := bs.Load(slot)
		require.NoError(t, err)
		assert.NotNil(t, data, "slot %s must be written", slot)
	}
}
