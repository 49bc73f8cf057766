package secrets

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingStore struct {
	value string
	err   error
	calls int
}

func (s *countingStore) Get(name string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.value, nil
}

func TestCache_FetchesOnce(t *testing.T) {
	store := &countingStore{value: "sg-key"}
	cache := NewCache(store, "SENDGRID_API_KEY")

	for i := 0; i < 3; i++ {
		v, err := cache.Get()
		require.NoError(t, err)
		assert.Equal(t, "sg-key", v)
	}
	assert.Equal(t, 1, store.calls)
}

func TestCache_CachesFailure(t *testing.T) {
	store := &countingStore{err: errors.New("store unavailable")}
	cache := NewCache(store, "SENDGRID_API_KEY")

	_, err := cache.Get()
	require.Error(t, err)
	_, err = cache.Get()
	require.Error(t, err)
	assert.Equal(t, 1, store.calls)
}

func TestCache_Reset(t *testing.T) {
	store := &countingStore{err: errors.New("store unavailable")}
	cache := NewCache(store, "SENDGRID_API_KEY")

	_, err := cache.Get()
	require.Error(t, err)

	store.err = nil
	store.value = "recovered"
	cache.Reset()

	v, err := cache.Get()
	require.NoError(t, err)
	assert.Equal(t, "recovered", v)
	assert.Equal(t, 2, store.calls)
}

func TestEnvStore_Get(t *testing.T) {
	t.Setenv("TEST_SECRET_VALUE", "abc")
	v, err := EnvStore{}.Get("TEST_SECRET_VALUE")
	require.NoError(t, err)
	assert.Equal(t, "abc", v)

	_, err = EnvStore{}.Get("TEST_SECRET_MISSING")
	require.Error(t, err)
}
