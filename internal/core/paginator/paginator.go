// Package paginator splits an ordered result set into fixed-size pages.
package paginator

import "strconv"

// PostsPerPage is the page size used by every feed.
const PostsPerPage = 10

// Page describes one page of a result set of Count items.
type Page struct {
	Number   int
	NumPages int
	Count    int64
	PerPage  int
}

// New resolves the raw page parameter against count items. A missing or
// non-numeric value yields the first page, an out-of-range number the last.
func New(count int64, raw string, perPage int) Page {
	if perPage <= 0 {
		perPage = PostsPerPage
	}
	if count < 0 {
		count = 0
	}

	numPages := int((count + int64(perPage) - 1) / int64(perPage))
	if numPages == 0 {
		numPages = 1
	}

	number, err := strconv.Atoi(raw)
	switch {
	case err != nil:
		number = 1
	case number < 1 || number > numPages:
		number = numPages
	}

	return Page{Number: number, NumPages: numPages, Count: count, PerPage: perPage}
}

// Offset is the index of the first item of the page.
func (p Page) Offset() int { return (p.Number - 1) * p.PerPage }

// Limit is the maximum number of items on the page.
func (p Page) Limit() int { return p.PerPage }

func (p Page) HasNext() bool     { return p.Number < p.NumPages }
func (p Page) HasPrevious() bool { return p.Number > 1 }
func (p Page) HasOtherPages() bool {
	return p.HasNext() || p.HasPrevious()
}

func (p Page) NextPageNumber() int     { return p.Number + 1 }
func (p Page) PreviousPageNumber() int { return p.Number - 1 }

// PageRange lists 1..NumPages for templates.
func (p Page) PageRange() []int {
	r := make([]int, p.NumPages)
	for i := range r {
		r[i] = i + 1
	}
	return r
}
