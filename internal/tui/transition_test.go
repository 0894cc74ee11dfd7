package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition_StartAndFinish(t *testing.T) {
	tr := NewTransition(DefaultTransition)

	cmd, ok := tr.Start(TabWatchlist)
	require.True(t, ok)
	require.NotNil(t, cmd)
	assert.True(t, tr.Fading())
	assert.Equal(t, TabWatchlist, tr.Target())

	_, again := tr.Start(TabReviews)
	assert.False(t, again, "second switch ignored while fading")

	tab, done := tr.Finish(transitionDoneMsg{seq: 1, target: TabWatchlist})
	require.True(t, done)
	assert.Equal(t, TabWatchlist, tab)
	assert.False(t, tr.Fading())
}

func TestTransition_StaleFinishIgnored(t *testing.T) {
	tr := NewTransition(time.Second)
	_, _ = tr.Start(TabWatchlist)

	_, done := tr.Finish(transitionDoneMsg{seq: 0, target: TabWatchlist})
	assert.False(t, done)
	assert.True(t, tr.Fading())
}

func TestTransition_ZeroIsImmediate(t *testing.T) {
	tr := NewTransition(0)
	cmd, ok := tr.Start(TabWatchlist)
	assert.False(t, ok)
	assert.Nil(t, cmd)
	assert.False(t, tr.Fading())
}

func TestTab_Other(t *testing.T) {
	assert.Equal(t, TabWatchlist, TabReviews.Other())
	assert.Equal(t, TabReviews, TabWatchlist.Other())
	assert.Equal(t, "Watch List", TabWatchlist.String())
}
