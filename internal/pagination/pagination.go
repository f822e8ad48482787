// Package pagination slices lists into fixed size pages
package pagination

// DefaultPageSize is page size of customer list screen
const DefaultPageSize = 10

// TotalPages is number of pages needed for count records, 0 for empty list
func TotalPages(count, pageSize int) int {
	if count <= 0 || pageSize <= 0 {
		return 0
	}

	totalPages := count / pageSize
	if count%pageSize > 0 {
		totalPages++
	}
	return totalPages
}

// Bounds returns start and end index of page, both clamped into [0, count]
func Bounds(count, pageSize, page int) (int, int) {
	if count < 0 {
		count = 0
	}
	if page < 1 || pageSize < 1 || page-1 >= TotalPages(count, pageSize) {
		return count, count
	}

	start := (page - 1) * pageSize
	end := start + pageSize

	start = clamp(start, 0, count)
	end = clamp(end, start, count)
	return start, end
}

// Page returns records of 1-based page. Page past the end is empty, not an error.
func Page[T any](records []T, pageSize, page int) []T {
	start, end := Bounds(len(records), pageSize, page)
	return records[start:end]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Cursor tracks current page over a list whose size may change
type Cursor struct {
	page       int
	pageSize   int
	totalPages int
}

// NewCursor builds cursor positioned on the first page
func NewCursor(pageSize int) *Cursor {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &Cursor{page: 1, pageSize: pageSize}
}

// Page is current 1-based page number
func (c *Cursor) Page() int {
	return c.page
}

// PageSize is fixed page size
func (c *Cursor) PageSize() int {
	return c.pageSize
}

// TotalPages is number of pages for the last known count
func (c *Cursor) TotalPages() int {
	return c.totalPages
}

// SetCount recomputes total pages. Current page is pulled back to the last page
// when list shrank below it, zero total pages leaves page as is.
func (c *Cursor) SetCount(count int) {
	c.totalPages = TotalPages(count, c.pageSize)
	if c.totalPages > 0 && c.page > c.totalPages {
		c.page = c.totalPages
	}
}

// Reset moves cursor to the first page
func (c *Cursor) Reset() {
	c.page = 1
}

// GoTo moves to page if it exists, returns false and stays otherwise
func (c *Cursor) GoTo(page int) bool {
	if page < 1 || page > c.totalPages {
		return false
	}
	c.page = page
	return true
}

// Next moves to the following page if any
func (c *Cursor) Next() bool {
	return c.GoTo(c.page + 1)
}

// Previous moves to the preceding page if any
func (c *Cursor) Previous() bool {
	return c.GoTo(c.page - 1)
}
