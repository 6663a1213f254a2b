package deck

import (
	"testing"

	"anglermatch/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func anglers(ids ...string) []catalog.Angler {
	out := make([]catalog.Angler, len(ids))
	for i, id := range ids {
		out[i] = catalog.Angler{ID: id, Name: "angler " + id}
	}
	return out
}

func TestCurrentStartsAtFirst(t *testing.T) {
	c := New(anglers("a", "b", "c"))
	a, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "a", a.ID)

	n, total := c.Position()
	assert.Equal(t, 1, n)
	assert.Equal(t, 3, total)
}

func TestLikeAndPassAdvance(t *testing.T) {
	c := New(anglers("a", "b", "c"))

	var liked, passed []string
	require.True(t, c.Like(func(id string) { liked = append(liked, id) }))
	require.True(t, c.Pass(func(id string) { passed = append(passed, id) }))
	require.True(t, c.Like(func(id string) { liked = append(liked, id) }))

	assert.Equal(t, []string{"a", "c"}, liked)
	assert.Equal(t, []string{"b"}, passed)
	assert.Equal(t, 0, c.Index(), "cursor wraps after the last card")
}

func TestWraparoundReturnsToStart(t *testing.T) {
	for n := 1; n <= 5; n++ {
		ids := make([]string, n)
		for i := range ids {
			ids[i] = string(rune('a' + i))
		}
		c := New(anglers(ids...))
		c.Advance() // start somewhere other than zero when possible
		start := c.Index()

		for i := 0; i < n; i++ {
			if i%2 == 0 {
				c.Like(nil)
			} else {
				c.Pass(nil)
			}
			assert.GreaterOrEqual(t, c.Index(), 0)
			assert.Less(t, c.Index(), n)
		}
		assert.Equal(t, start, c.Index(), "deck of %d", n)
	}
}

func TestEmptyDeck(t *testing.T) {
	c := New(nil)

	_, ok := c.Current()
	assert.False(t, ok)

	called := false
	assert.False(t, c.Like(func(string) { called = true }))
	assert.False(t, c.Pass(func(string) { called = true }))
	assert.False(t, called)

	c.Advance()
	assert.Equal(t, 0, c.Index())

	n, total := c.Position()
	assert.Zero(t, n)
	assert.Zero(t, total)
}

func TestNewCopiesInput(t *testing.T) {
	in := anglers("a", "b")
	c := New(in)
	in[0].ID = "mutated"

	a, _ := c.Current()
	assert.Equal(t, "a", a.ID)
}
