package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNilClientFailsSafe(t *testing.T) {
	var c *Client
	ctx := context.Background()

	data, err := c.Get(ctx, "roadmap:view:1")
	assert.NoError(t, err)
	assert.Nil(t, data)

	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	assert.NoError(t, c.SetJSON(ctx, "k", map[string]int{"a": 1}, time.Minute))
	assert.NoError(t, c.Delete(ctx, "k", "k2"))
	assert.Error(t, c.Ping(ctx))
	assert.NoError(t, c.Close())

	var dst map[string]int
	assert.False(t, c.GetJSON(ctx, "k", &dst))
}

func TestUnreachableRedisBehavesLikeMiss(t *testing.T) {
	// Nothing listens on port 1; every call must degrade to a miss.
	c := New("127.0.0.1:1", "", 0)
	defer c.Close()
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	data, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, data)

	var dst []string
	assert.False(t, c.GetJSON(ctx, "k", &dst))
}
