package viewer

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/docshare/internal/client/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlers(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, pageURL)
	require.NoError(t, f.c.Init(ctx))
	h := f.c.Handlers()

	assert.Equal(t, []string{
		"list", "select", "open", "close", "download", "print",
		"pdownload", "pprint", "search", "refresh", "show",
	}, h.Names())

	assert.ErrorIs(t, h.Dispatch(ctx, "open", []string{"1"}), ErrNoSelection)
	assert.ErrorIs(t, h.Dispatch(ctx, "select", nil), event.ErrUsage)
	assert.Error(t, h.Dispatch(ctx, "select", []string{"5"}))

	require.NoError(t, h.Dispatch(ctx, "select", []string{"1"}))
	name, ok := f.c.Selected()
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", name)

	require.NoError(t, h.Dispatch(ctx, "open", []string{"2"}))
	require.NotNil(t, f.c.View().Preview)
	assert.Equal(t, "scan.png", f.c.View().Preview.Title)

	require.NoError(t, h.Dispatch(ctx, "close", nil))
	assert.Nil(t, f.c.View().Preview)

	require.NoError(t, h.Dispatch(ctx, "pdownload", nil))
	require.Len(t, f.saver.saved, 1)
	assert.Equal(t, "scan.png", f.saver.saved[0].name)

	require.NoError(t, h.Dispatch(ctx, "download", []string{"1"}))
	assert.ErrorIs(t, h.Dispatch(ctx, "download", []string{"9"}), ErrNoSuchFile)
	assert.ErrorIs(t, h.Dispatch(ctx, "print", []string{"x"}), event.ErrUsage)

	require.NoError(t, h.Dispatch(ctx, "search", []string{"bob"}))
	assert.Equal(t, "bob", f.c.View().Query)

	require.NoError(t, h.Dispatch(ctx, "refresh", nil))
	assert.Equal(t, 2, f.api.files)

	require.NoError(t, h.Dispatch(ctx, "list", nil))
	require.NoError(t, h.Dispatch(ctx, "show", nil))
}
