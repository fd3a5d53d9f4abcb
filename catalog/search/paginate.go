package search

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/BurntSushi/cinedex/catalog"
)

// Page is one page of search results.
type Page struct {
	Movies []catalog.Movie

	// Number is the page number, starting at 1.
	Number int

	// NumPages is always at least 1, even when there are no results.
	NumPages int

	// Total is the number of movies matching the search over all pages.
	Total int

	PageSize  int
	QueryTime time.Duration
}

// newPage lays out total results in pages of size n and picks the page
// requested by raw. A page number that isn't an integer selects the first
// page, and an integer outside of 1..NumPages selects the last one, even
// when it is too big for an int.
func newPage(total, n int, raw string) *Page {
	hits := total
	if hits < 1 {
		hits = 1
	}
	p := &Page{
		Total:    total,
		PageSize: n,
		NumPages: (hits + n - 1) / n,
	}
	num, err := strconv.Atoi(strings.TrimSpace(raw))
	switch {
	case errors.Is(err, strconv.ErrRange):
		p.Number = p.NumPages
	case err != nil:
		p.Number = 1
	case num < 1 || num > p.NumPages:
		p.Number = p.NumPages
	default:
		p.Number = num
	}
	return p
}

func (p *Page) HasNext() bool     { return p.Number < p.NumPages }
func (p *Page) HasPrevious() bool { return p.Number > 1 }
func (p *Page) HasOther() bool    { return p.HasNext() || p.HasPrevious() }
func (p *Page) NextNumber() int   { return p.Number + 1 }
func (p *Page) PrevNumber() int   { return p.Number - 1 }

// StartIndex is the 1-based position of the first movie on this page among
// all results, or 0 when there are no results.
func (p *Page) StartIndex() int {
	if p.Total == 0 {
		return 0
	}
	return (p.Number-1)*p.PageSize + 1
}

// EndIndex is the 1-based position of the last movie on this page.
func (p *Page) EndIndex() int {
	if p.Number == p.NumPages {
		return p.Total
	}
	return p.Number * p.PageSize
}

// PageRange returns every page number, in order.
func (p *Page) PageRange() []int {
	return p.Window(p.NumPages)
}

// Window returns at most k page numbers centered on the current page.
func (p *Page) Window(k int) []int {
	if k < 1 {
		return nil
	}
	lo := p.Number - k/2
	if lo+k-1 > p.NumPages {
		lo = p.NumPages - k + 1
	}
	if lo < 1 {
		lo = 1
	}
	var nums []int
	for n := lo; n <= p.NumPages && len(nums) < k; n++ {
		nums = append(nums, n)
	}
	return nums
}

// QueryMillis is the time taken by the search in milliseconds, rounded to
// two decimal places.
func (p *Page) QueryMillis() float64 {
	ms := float64(p.QueryTime) / float64(time.Millisecond)
	return math.Round(ms*100) / 100
}
