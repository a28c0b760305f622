package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guide-backend/internal/content"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestStatus(t *testing.T) {
	b, err := content.LoadEmbedded()
	require.NoError(t, err)

	st := NewService(b, nil).Status(context.Background())
	assert.True(t, st.OK)
	assert.Equal(t, 16, st.Content["types"])
	assert.Equal(t, 7, st.Content["resorts"])
	assert.Empty(t, st.Redis)

	down := NewService(b, pingFunc(func(context.Context) error { return errors.New("dial tcp: refused") }))
	st = down.Status(context.Background())
	assert.True(t, st.OK)
	assert.Equal(t, "unreachable", st.Redis)

	up := NewService(b, pingFunc(func(context.Context) error { return nil }))
	assert.Equal(t, "ok", up.Status(context.Background()).Redis)
}
