package cache

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedis_Store(t *testing.T) {
	s := createRedisClient(t)
	defer s.Close()

	testStore(t, s)
}

func TestNewRedis_InvalidURL(t *testing.T) {
	_, err := NewRedis("memcached://localhost")
	assert.Error(t, err)
}

// docker run -it --rm -p 6379:6379 redis
// PODCASTR_TEST_REDIS=redis://localhost go test ./pkg/cache/...
func createRedisClient(t *testing.T) *Redis {
	redisURL := os.Getenv("PODCASTR_TEST_REDIS")
	if redisURL == "" || testing.Short() {
		t.Skip("run redis tests manually")
	}

	client, err := NewRedis(redisURL)
	require.NoError(t, err)

	keys, err := client.client.Keys(redisKeyPrefix + "*").Result()
	assert.NoError(t, err)

	if len(keys) > 0 {
		err = client.client.Del(keys...).Err()
		assert.NoError(t, err)
	}

	return client
}
