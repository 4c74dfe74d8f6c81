package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeClock advances only when told to.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newFixture() (*Content, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	return New(WithClock(clock.Now)), clock
}

func TestGetMissingKey(t *testing.T) {
	t.Parallel()

	c, _ := newFixture()
	_, ok := c.Get("niets")
	require.False(t, ok)
}

func TestPutThenGetWithinTTL(t *testing.T) {
	t.Parallel()

	c, clock := newFixture()
	c.Put("forum|/forum", "Forum pagina.")

	clock.Advance(DefaultTTL - time.Second)
	got, ok := c.Get("forum|/forum")
	require.True(t, ok)
	require.Equal(t, "Forum pagina.", got)
}

func TestGetPastTTLReportsAbsentAndReaps(t *testing.T) {
	t.Parallel()

	c, clock := newFixture()
	c.Put("forum|/forum", "Forum pagina.")
	require.Equal(t, 1, c.Len())

	clock.Advance(DefaultTTL + time.Second)
	_, ok := c.Get("forum|/forum")
	require.False(t, ok)
	require.Zero(t, c.Len(), "expired entry should be deleted on read")
}

func TestPutResetsTTL(t *testing.T) {
	t.Parallel()

	c, clock := newFixture()
	c.Put("k", "oud")

	clock.Advance(DefaultTTL - time.Second)
	c.Put("k", "nieuw")

	clock.Advance(2 * time.Second)
	got, ok := c.Get("k")
	require.True(t, ok)
	require.Equal(t, "nieuw", got)
}

func TestDistinctKeysNeverShareEntries(t *testing.T) {
	t.Parallel()

	c, _ := newFixture()
	c.Put(Key("forumDetail", "/forum/post-1"), "Eerste bericht.")
	c.Put(Key("forumDetail", "/forum/post-2"), "Tweede bericht.")

	got, ok := c.Get(Key("forumDetail", "/forum/post-1"))
	require.True(t, ok)
	require.Equal(t, "Eerste bericht.", got)

	got, ok = c.Get(Key("forumDetail", "/forum/post-2"))
	require.True(t, ok)
	require.Equal(t, "Tweede bericht.", got)
}

func TestClearDropsEverything(t *testing.T) {
	t.Parallel()

	c, _ := newFixture()
	c.Put("a", "1")
	c.Put("b", "2")
	c.Clear()

	require.Zero(t, c.Len())
	_, ok := c.Get("a")
	require.False(t, ok)
}

func TestWithTTLOverridesDefault(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Unix(0, 0)}
	c := New(WithTTL(10*time.Second), WithClock(clock.Now))
	c.Put("k", "v")

	clock.Advance(11 * time.Second)
	_, ok := c.Get("k")
	require.False(t, ok)
}

func TestWithTTLIgnoresNonPositiveValues(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Unix(0, 0)}
	c := New(WithTTL(0), WithClock(clock.Now))
	c.Put("k", "v")

	clock.Advance(time.Second)
	got, ok := c.Get("k")
	require.True(t, ok)
	require.Equal(t, "v", got)
}

func TestKeyIncludesScreenAndRoute(t *testing.T) {
	t.Parallel()

	require.NotEqual(t, Key("forum", "/forum"), Key("forumDetail", "/forum"))
	require.NotEqual(t, Key("forumDetail", "/forum/1"), Key("forumDetail", "/forum/2"))
}
