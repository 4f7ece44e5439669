package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-hotseat/testing/suite"
)

func TestNewRedisStorage(t *testing.T) {
	t.Run("Connects to a running server", func(t *testing.T) {
		ctx, st := suite.New(t)

		// When: a storage is opened on the suite's Redis
		redisStorage, err := NewRedisStorage(ctx, st.RedisAddr)

		// Then: the connection works and closes cleanly
		require.NoError(t, err)
		require.NoError(t, redisStorage.Connection.Ping(ctx).Err())
		require.NoError(t, redisStorage.Close())
	})

	t.Run("Fails when nothing listens on the address", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		// When: a storage is opened on a closed port
		redisStorage, err := NewRedisStorage(ctx, "127.0.0.1:1")

		// Then: an error is returned
		require.Error(t, err)
		require.Nil(t, redisStorage)
	})
}
