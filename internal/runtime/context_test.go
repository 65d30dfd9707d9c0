package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notepal/notepal/internal/output"
)

func TestNewInMemory(t *testing.T) {
	ctx, err := New(Options{InMemory: true, Format: output.FormatCLI, ColorMode: output.ColorNever})
	require.NoError(t, err)
	defer ctx.Close()

	assert.NotNil(t, ctx.DB)
	assert.NotNil(t, ctx.Docs)
	assert.NotNil(t, ctx.Repo)
	assert.NotNil(t, ctx.WebhookRepo)
	assert.NotNil(t, ctx.CacheRepo)
	assert.True(t, ctx.IsCLI())
	assert.False(t, ctx.IsJSON())
}

func TestNewHonorsMemoryEnv(t *testing.T) {
	t.Setenv("NOTEPAL_DATABASE", ":memory:")

	ctx, err := New(Options{Format: output.FormatJSON})
	require.NoError(t, err)
	defer ctx.Close()

	assert.Empty(t, ctx.DB.Path())
	assert.True(t, ctx.IsJSON())
}
