// Package deck implements the swipe cursor over the candidate catalog.
//
// The deck never shrinks. Like and pass both advance with wraparound, so a
// non-empty deck always has a current card and cycles indefinitely. Only an
// empty deck reaches the "no more anglers" state.
package deck

import "anglermatch/internal/catalog"

// Cursor walks a fixed, ordered list of anglers.
type Cursor struct {
	anglers []catalog.Angler
	index   int
}

// New builds a cursor at the first angler. The slice is copied.
func New(anglers []catalog.Angler) *Cursor {
	return &Cursor{anglers: append([]catalog.Angler(nil), anglers...)}
}

// Len returns the deck size.
func (c *Cursor) Len() int { return len(c.anglers) }

// Index returns the current position, always 0 for an empty deck.
func (c *Cursor) Index() int { return c.index }

// Position returns the 1-based card number and the deck size, for the
// "2 of 3 anglers" footer.
func (c *Cursor) Position() (int, int) {
	if len(c.anglers) == 0 {
		return 0, 0
	}
	return c.index + 1, len(c.anglers)
}

// Current returns the card under the cursor, false when the deck is empty.
func (c *Cursor) Current() (catalog.Angler, bool) {
	if len(c.anglers) == 0 {
		return catalog.Angler{}, false
	}
	return c.anglers[c.index], true
}

// Like reports the current angler to onMatch, then advances. It returns
// false without calling onMatch when the deck is empty.
func (c *Cursor) Like(onMatch func(id string)) bool {
	return c.act(onMatch)
}

// Pass reports the current angler to onPass, then advances.
func (c *Cursor) Pass(onPass func(id string)) bool {
	return c.act(onPass)
}

func (c *Cursor) act(fn func(id string)) bool {
	a, ok := c.Current()
	if !ok {
		return false
	}
	if fn != nil {
		fn(a.ID)
	}
	c.Advance()
	return true
}

// Advance moves to the next card, wrapping to the first after the last.
func (c *Cursor) Advance() {
	if len(c.anglers) == 0 {
		return
	}
	c.index = (c.index + 1) % len(c.anglers)
}
