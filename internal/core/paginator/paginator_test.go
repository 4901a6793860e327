package paginator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	cases := []struct {
		name     string
		count    int64
		raw      string
		number   int
		numPages int
	}{
		{"missing defaults to first", 15, "", 1, 2},
		{"garbage defaults to first", 15, "abc", 1, 2},
		{"second page", 15, "2", 2, 2},
		{"past the end clamps to last", 15, "9", 2, 2},
		{"zero clamps to last", 15, "0", 2, 2},
		{"negative clamps to last", 25, "-3", 3, 3},
		{"empty set has one page", 0, "4", 1, 1},
		{"exact multiple", 20, "2", 2, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := New(tc.count, tc.raw, PostsPerPage)
			assert.Equal(t, tc.number, p.Number)
			assert.Equal(t, tc.numPages, p.NumPages)
		})
	}
}

func TestPageWindow(t *testing.T) {
	p := New(15, "2", 10)
	assert.Equal(t, 10, p.Offset())
	assert.Equal(t, 10, p.Limit())
	assert.False(t, p.HasNext())
	assert.True(t, p.HasPrevious())
	assert.True(t, p.HasOtherPages())
	assert.Equal(t, 1, p.PreviousPageNumber())
	assert.Equal(t, []int{1, 2}, p.PageRange())

	first := New(15, "1", 10)
	assert.Equal(t, 0, first.Offset())
	assert.True(t, first.HasNext())
	assert.Equal(t, 2, first.NextPageNumber())
	assert.False(t, first.HasPrevious())

	single := New(3, "", 10)
	assert.False(t, single.HasOtherPages())
}

func TestNewFallsBackToDefaultSize(t *testing.T) {
	p := New(11, "2", 0)
	assert.Equal(t, PostsPerPage, p.PerPage)
	assert.Equal(t, 2, p.NumPages)
}
