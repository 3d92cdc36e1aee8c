package cache

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRedisPlainAddr(t *testing.T) {
	mr := miniredis.RunT(t)

	InitRedis(mr.Addr())
	require.NotNil(t, GetClient())
}

func TestInitRedisURL(t *testing.T) {
	mr := miniredis.RunT(t)

	InitRedis("redis://" + mr.Addr())
	require.NotNil(t, GetClient())
}

func TestInitRedisUnreachable(t *testing.T) {
	InitRedis("localhost:1")
	assert.Nil(t, GetClient())
}

func TestInitRedisBadURL(t *testing.T) {
	InitRedis("redis://bad url with spaces")
	assert.Nil(t, GetClient())
}
