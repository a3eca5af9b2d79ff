package presence

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_SetOnline(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	reg := NewRegistry(rdb, time.Minute, "presence")

	mock.ExpectSet("presence:42", "1", time.Minute).SetVal("OK")

	err := reg.SetOnline(context.Background(), 42)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistry_SetOffline(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	reg := NewRegistry(rdb, time.Minute, "presence")

	mock.ExpectDel("presence:42").SetVal(1)

	err := reg.SetOffline(context.Background(), 42)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistry_IsOnline(t *testing.T) {
	t.Parallel()

	t.Run("online", func(t *testing.T) {
		t.Parallel()

		rdb, mock := redismock.NewClientMock()
		reg := NewRegistry(rdb, time.Minute, "presence")

		mock.ExpectGet("presence:42").SetVal("1")

		online, err := reg.IsOnline(context.Background(), 42)

		require.NoError(t, err)
		assert.True(t, online)
	})

	t.Run("offline", func(t *testing.T) {
		t.Parallel()

		rdb, mock := redismock.NewClientMock()
		reg := NewRegistry(rdb, time.Minute, "presence")

		mock.ExpectGet("presence:42").RedisNil()

		online, err := reg.IsOnline(context.Background(), 42)

		require.NoError(t, err)
		assert.False(t, online)
	})
}

func TestRegistry_NilClient(t *testing.T) {
	t.Parallel()

	// Without Redis every operation is a no-op; the server still runs.
	reg := NewRegistry(nil, 0, "")

	assert.NoError(t, reg.SetOnline(context.Background(), 1))
	assert.NoError(t, reg.SetOffline(context.Background(), 1))

	online, err := reg.IsOnline(context.Background(), 1)
	assert.NoError(t, err)
	assert.False(t, online)
}

func TestRegistry_Defaults(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(nil, 0, "")

	assert.Equal(t, defaultTTL, reg.ttl)
	assert.Equal(t, "presence:7", reg.key(7))
}
