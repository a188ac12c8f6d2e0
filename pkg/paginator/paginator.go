// Package paginator splits a counted result set into fixed-size pages.
package paginator

import (
	"errors"
	"strconv"
	"strings"
)

var ErrInvalidPage = errors.New("invalid page")

type Paginator struct {
	Count   int
	PerPage int
}

func New(count, perPage int) Paginator {
	if perPage <= 0 {
		perPage = 5
	}
	if count < 0 {
		count = 0
	}
	return Paginator{Count: count, PerPage: perPage}
}

// NumPages is never below 1 so that an empty list still has a first page.
func (p Paginator) NumPages() int {
	if p.Count == 0 {
		return 1
	}
	return (p.Count + p.PerPage - 1) / p.PerPage
}

// Page resolves the raw ?page= value. Empty means the first page, "last"
// the last one; anything else must be an integer within range.
func (p Paginator) Page(raw string) (Page, error) {
	raw = strings.TrimSpace(raw)

	number := 1
	switch raw {
	case "":
	case "last":
		number = p.NumPages()
	default:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Page{}, ErrInvalidPage
		}
		number = n
	}

	if number < 1 || number > p.NumPages() {
		return Page{}, ErrInvalidPage
	}

	return Page{
		Number:   number,
		NumPages: p.NumPages(),
		Count:    p.Count,
		PerPage:  p.PerPage,
	}, nil
}

type Page struct {
	Number   int
	NumPages int
	Count    int
	PerPage  int
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.PerPage
}

func (p Page) Limit() int {
	return p.PerPage
}

func (p Page) IsPaginated() bool {
	return p.NumPages > 1
}

func (p Page) HasPrevious() bool {
	return p.Number > 1
}

func (p Page) HasNext() bool {
	return p.Number < p.NumPages
}

func (p Page) PreviousPageNumber() int {
	return p.Number - 1
}

func (p Page) NextPageNumber() int {
	return p.Number + 1
}
