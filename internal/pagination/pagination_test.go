package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	res := make([]int, n)
	for i := range res {
		res[i] = i + 1
	}
	return res
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 3, TotalPages(23, 10))
	assert.Equal(t, 23, TotalPages(23, 1))
}

func TestPagesReconstructList(t *testing.T) {
	for _, count := range []int{0, 1, 9, 10, 11, 23, 100} {
		for _, size := range []int{1, 3, 10, 50} {
			records := seq(count)

			var joined []int
			for p := 1; p <= TotalPages(count, size); p++ {
				page := Page(records, size, p)
				require.NotEmpty(t, page, "page %d of %d records by %d must not be empty", p, count, size)
				require.LessOrEqual(t, len(page), size)
				joined = append(joined, page...)
			}

			if count == 0 {
				assert.Empty(t, joined)
				continue
			}
			assert.Equal(t, records, joined, "count=%d size=%d", count, size)
		}
	}
}

func TestPageOutOfRange(t *testing.T) {
	records := seq(5)

	assert.Empty(t, Page(records, 10, 2), "page past the end must be empty")
	assert.Empty(t, Page(records, 10, 0))
	assert.Empty(t, Page(records, 10, -3))
	assert.Empty(t, Page([]int{}, 10, 1))
	assert.Equal(t, []int{5}, Page(records, 2, 3))
	assert.Empty(t, Page(seq(23), 10, 1844674407370955163), "huge page must not wrap around")
	assert.Empty(t, Page(records, 0, 1))
}

func TestCursorNavigation(t *testing.T) {
	c := NewCursor(10)
	c.SetCount(23)

	require.Equal(t, 3, c.TotalPages())
	require.Equal(t, 1, c.Page())

	assert.False(t, c.Previous(), "no page before the first one")
	assert.Equal(t, 1, c.Page())

	assert.False(t, c.GoTo(4), "page 4 does not exist")
	assert.Equal(t, 1, c.Page(), "failed navigation must not move cursor")

	assert.True(t, c.GoTo(3))
	assert.Equal(t, 3, c.Page())
	assert.Len(t, Page(seq(23), c.PageSize(), c.Page()), 3)

	assert.False(t, c.Next(), "no page after the last one")
	assert.True(t, c.Previous())
	assert.Equal(t, 2, c.Page())
	assert.True(t, c.Next())
	assert.Equal(t, 3, c.Page())

	c.Reset()
	assert.Equal(t, 1, c.Page())
}

func TestCursorClampsOnShrink(t *testing.T) {
	c := NewCursor(10)
	c.SetCount(21)
	require.True(t, c.GoTo(3))

	c.SetCount(20)
	assert.Equal(t, 2, c.TotalPages())
	assert.Equal(t, 2, c.Page(), "page must be clamped to the new last page")

	c.SetCount(0)
	assert.Equal(t, 0, c.TotalPages())
	assert.Equal(t, 2, c.Page(), "zero pages is a valid state and does not clamp")
	assert.False(t, c.GoTo(1))
}

func TestNewCursorDefaultsPageSize(t *testing.T) {
	assert.Equal(t, DefaultPageSize, NewCursor(0).PageSize())
}
