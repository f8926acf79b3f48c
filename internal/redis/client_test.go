package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectUnreachable(t *testing.T) {
	// Port 1 is never bound, so the dial is refused immediately and the
	// ping surfaces the failure instead of handing back a dead client.
	client, err := Connect(context.Background(), "127.0.0.1:1", "")

	require.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis at 127.0.0.1:1")
}
