package keystore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobscout/internal/config"
	"jobscout/internal/keystore"
)

func TestOpenDisabled(t *testing.T) {
	s, err := keystore.Open(context.Background(), config.RedisConfig{Enabled: false})
	require.NoError(t, err)
	assert.False(t, s.Enabled())
}

func TestDisabledStoreIsSafe(t *testing.T) {
	ctx := context.Background()
	var s keystore.Store

	keys, err := s.HistoricalKeys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)

	// No-ops, must not panic.
	s.Persist(ctx, []string{"acme.tal.net::/job/1"})
	s.Close()
}

func TestOpenBadURL(t *testing.T) {
	s, err := keystore.Open(context.Background(), config.RedisConfig{
		Enabled: true,
		URL:     "not-a-redis-url",
		Key:     "jobscout:keys",
	})
	assert.Error(t, err)
	assert.False(t, s.Enabled())
}
