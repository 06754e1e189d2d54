package example

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionRotates(t *testing.T) {
	assert.Equal(t, Left, Up.Next())
	assert.Equal(t, Down, Left.Next())
	assert.Equal(t, Right, Down.Next())
	assert.Equal(t, Up, Right.Next())

	assert.Equal(t, Right, Up.Prev())
	assert.Equal(t, Up, Left.Prev())
	assert.Equal(t, Left, Down.Prev())
	assert.Equal(t, Down, Right.Prev())
}

func TestDirectionRoundTrip(t *testing.T) {
	for _, d := range []Direction{Up, Left, Down, Right} {
		assert.Equal(t, d, d.Next().Prev())
		assert.Equal(t, d, d.Prev().Next())
	}
}

func TestGearShifts(t *testing.T) {
	next, ok := Reverse.Next()
	assert.True(t, ok)
	assert.Equal(t, Neutral, next)

	next, ok = Neutral.Next()
	assert.True(t, ok)
	assert.Equal(t, First, next)

	_, ok = First.Next()
	assert.False(t, ok)

	_, ok = Reverse.Prev()
	assert.False(t, ok)

	prev, ok := First.Prev()
	assert.True(t, ok)
	assert.Equal(t, Neutral, prev)
}

func TestSeasonIterator(t *testing.T) {
	it := NewSeasonIterator()

	for _, want := range []Season{Spring, Summer, Autumn, Winter} {
		got, ok := it.Next()
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}

	// Exhaustion is absorbing: every further call keeps yielding nothing.
	for range 3 {
		_, ok := it.Next()
		assert.False(t, ok)
	}
}

func TestSeasonIterStartsAtReceiver(t *testing.T) {
	it := Autumn.Iter()

	got, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, Autumn, got)

	got, ok = it.Next()
	assert.True(t, ok)
	assert.Equal(t, Winter, got)

	_, ok = it.Next()
	assert.False(t, ok)
}

func TestSeasonAllReproducesDeclarationOrder(t *testing.T) {
	var seasons []Season
	for v := range NewSeasonIterator().All() {
		seasons = append(seasons, v)
	}
	assert.Equal(t, []Season{Spring, Summer, Autumn, Winter}, seasons)

	// A drained iterator yields nothing; traversal restarts only with a
	// fresh cursor.
	it := NewSeasonIterator()
	for range it.All() {
	}
	count := 0
	for range it.All() {
		count++
	}
	assert.Zero(t, count)
}
