package cas_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stitch/internal/adapters/cas"
)

func TestStore_PutAndGet(t *testing.T) {
	store := cas.NewStore(filepath.Join(t.TempDir(), "state.json"))

	got, err := store.Get("out/site.json")
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, store.Put("out/site.json", "0123456789abcdef"))

	got, err = store.Get("out/site.json")
	require.NoError(t, err)
	assert.Equal(t, "0123456789abcdef", got)
}

func TestStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")

	store1 := cas.NewStore(path)
	require.NoError(t, store1.Put("out/admin.yaml", "aaaa"))

	store2 := cas.NewStore(path)

	got, err := store2.Get("out/admin.yaml")
	require.NoError(t, err)
	assert.Equal(t, "aaaa", got)
}

func TestStore_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	store := cas.NewStore(path)

	got, err := store.Get("anything")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := cas.NewStore(path)

	_, err := store.Get("out/site.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal fingerprint store")

	err = store.Put("out/site.json", "aaaa")
	require.Error(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(data))
}

func TestStore_ConstructionDoesNotReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store := cas.NewStore(path)

	require.NoError(t, os.WriteFile(path, []byte(`{"out/site.json": "bbbb"}`), 0o600))

	got, err := store.Get("out/site.json")
	require.NoError(t, err)
	assert.Equal(t, "bbbb", got)
}

func TestStore_ConcurrentPut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store := cas.NewStore(path)

	keys := []string{"a.json", "b.json", "c.json", "d.json"}

	var wg sync.WaitGroup
	for _, key := range keys {
		wg.Add(1)
		go func(key string) {
			defer wg.Done()
			assert.NoError(t, store.Put(key, "fp-"+key))
		}(key)
	}
	wg.Wait()

	reloaded := cas.NewStore(path)
	for _, key := range keys {
		got, err := reloaded.Get(key)
		require.NoError(t, err)
		assert.Equal(t, "fp-"+key, got)
	}
}
