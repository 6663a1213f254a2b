package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleAddsAndRemoves(t *testing.T) {
	s := Of("morning")

	added := Toggle(s, "night")
	assert.True(t, added.Contains("night"))
	assert.Equal(t, []string{"morning", "night"}, added.Items())

	removed := Toggle(added, "morning")
	assert.False(t, removed.Contains("morning"))
	assert.Equal(t, []string{"night"}, removed.Items())
}

func TestToggleLeavesInputUntouched(t *testing.T) {
	s := Of("a", "b")
	_ = Toggle(s, "a")
	_ = Toggle(s, "c")

	assert.Equal(t, []string{"a", "b"}, s.Items())
}

func TestToggleInvolution(t *testing.T) {
	sets := []Set[string]{
		{},
		Of("a"),
		Of("a", "b", "c"),
	}
	keys := []string{"a", "b", "z"}

	for _, s := range sets {
		for _, k := range keys {
			twice := Toggle(Toggle(s, k), k)
			assert.Truef(t, twice.Equal(s), "toggle(toggle(%v, %q)) = %v", s.Items(), k, twice.Items())
			assert.Equal(t, !s.Contains(k), Toggle(s, k).Contains(k))
		}
	}
}

func TestOfDropsDuplicates(t *testing.T) {
	s := Of(3, 1, 3, 2, 1)
	assert.Equal(t, []int{3, 1, 2}, s.Items())
	assert.Equal(t, 3, s.Len())
}

func TestZeroValue(t *testing.T) {
	var s Set[string]
	assert.True(t, s.Empty())
	assert.Nil(t, s.Items())
	assert.True(t, s.Toggle("x").Contains("x"))
}

func TestEqualIgnoresOrder(t *testing.T) {
	assert.True(t, Of("a", "b").Equal(Of("b", "a")))
	assert.False(t, Of("a").Equal(Of("a", "b")))
	assert.False(t, Of("a", "c").Equal(Of("a", "b")))
}
