package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvanholt/breeze/internal/owm"
)

func suggestions(labels ...string) []owm.Suggestion {
	out := make([]owm.Suggestion, 0, len(labels))
	for _, l := range labels {
		out = append(out, owm.Suggestion{Label: l})
	}
	return out
}

func TestKeystrokeSupersedesPendingTimer(t *testing.T) {
	c := New()

	first := c.Keystroke("Pa")
	second := c.Keystroke("Par")

	_, _, ok := c.TimerFired(first)
	assert.False(t, ok, "superseded timer must not fire a query")

	epoch, query, ok := c.TimerFired(second)
	require.True(t, ok)
	assert.Equal(t, 1, epoch)
	assert.Equal(t, "Par", query)
	assert.Equal(t, Querying, c.Phase())
}

func TestShortQueryHidesAndIssuesNothing(t *testing.T) {
	c := New()
	seq := c.Keystroke("Pa")
	epoch, _, ok := c.TimerFired(seq)
	require.True(t, ok)
	require.True(t, c.Deliver(epoch, suggestions("Paris, FR")))
	require.True(t, c.Visible())

	seq = c.Keystroke("P")
	_, _, ok = c.TimerFired(seq)

	assert.False(t, ok, "single character must not query")
	assert.Equal(t, Idle, c.Phase())
	assert.False(t, c.Visible())
}

func TestStaleEpochResultIsDiscarded(t *testing.T) {
	c := New()

	seq := c.Keystroke("Pa")
	epochN, _, ok := c.TimerFired(seq)
	require.True(t, ok)

	// A newer keystroke issues epoch N+1 before epoch N's result arrives.
	seq = c.Keystroke("Par")
	epochN1, _, ok := c.TimerFired(seq)
	require.True(t, ok)
	require.Equal(t, epochN+1, epochN1)

	assert.False(t, c.Deliver(epochN, suggestions("Palermo, IT")), "stale epoch must be dropped")
	assert.False(t, c.Visible())

	assert.True(t, c.Deliver(epochN1, suggestions("Paris, FR")))
	assert.True(t, c.Visible())
	assert.Equal(t, "Paris, FR", c.Items()[0].Label)
}

func TestEmptyResultHidesList(t *testing.T) {
	c := New()
	seq := c.Keystroke("Zz")
	epoch, _, ok := c.TimerFired(seq)
	require.True(t, ok)

	assert.True(t, c.Deliver(epoch, nil))
	assert.Equal(t, Idle, c.Phase())
	assert.False(t, c.Visible())
}

func TestNavigationWraps(t *testing.T) {
	c := New()
	seq := c.Keystroke("Sp")
	epoch, _, ok := c.TimerFired(seq)
	require.True(t, ok)
	require.True(t, c.Deliver(epoch, suggestions("a", "b", "c")))

	assert.Equal(t, 0, c.Selected())

	c.Prev()
	assert.Equal(t, 2, c.Selected(), "previous from index 0 wraps to k-1")

	c.Next()
	assert.Equal(t, 0, c.Selected(), "next from index k-1 wraps to 0")

	c.Next()
	c.Next()
	assert.Equal(t, 2, c.Selected())
}

func TestSelectReturnsLabelAndHides(t *testing.T) {
	c := New()
	seq := c.Keystroke("Pa")
	epoch, _, ok := c.TimerFired(seq)
	require.True(t, ok)
	require.True(t, c.Deliver(epoch, suggestions("Paris, FR", "Palermo, IT")))

	c.Next()
	label, ok := c.Select()

	require.True(t, ok)
	assert.Equal(t, "Palermo, IT", label)
	assert.Equal(t, Idle, c.Phase())

	_, ok = c.Select()
	assert.False(t, ok, "select with no list shown returns nothing")
}

func TestBlurHidesList(t *testing.T) {
	c := New()
	seq := c.Keystroke("Pa")
	epoch, _, ok := c.TimerFired(seq)
	require.True(t, ok)
	require.True(t, c.Deliver(epoch, suggestions("Paris, FR")))

	c.Blur()

	assert.False(t, c.Visible())
	assert.Empty(t, c.Items())
}

func TestResultAfterBlurIsDropped(t *testing.T) {
	// Focus is lost while a query is in flight; its late result must not
	// resurrect the list.
	c := New()
	seq := c.Keystroke("Pa")
	_, _, ok := c.TimerFired(seq)
	require.True(t, ok)

	c.Blur()
	epoch := 1

	assert.False(t, c.Deliver(epoch, suggestions("Paris, FR")))
	assert.False(t, c.Visible())
}
