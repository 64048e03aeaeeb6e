// Package pagination resolves a requested page number against a result size.
package pagination

import (
	"errors"
	"strconv"
	"strings"
)

var ErrInvalidPage = errors.New("invalid page")

// Page describes one window of a paginated listing.
type Page struct {
	Number   int
	PerPage  int
	NumPages int
	Total    int64
}

// New resolves raw (the "page" query parameter) for total items split into
// pages of perPage. An empty raw means page 1 and "last" means the final
// page. An empty result still has one, empty, first page.
func New(total int64, perPage int, raw string) (*Page, error) {
	if perPage <= 0 {
		perPage = 1
	}
	numPages := int((total + int64(perPage) - 1) / int64(perPage))
	if numPages == 0 {
		numPages = 1
	}

	number := 1
	switch raw = strings.TrimSpace(raw); raw {
	case "":
	case "last":
		number = numPages
	default:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, ErrInvalidPage
		}
		number = n
	}
	if number < 1 || number > numPages {
		return nil, ErrInvalidPage
	}

	return &Page{Number: number, PerPage: perPage, NumPages: numPages, Total: total}, nil
}

func (p *Page) Limit() int {
	return p.PerPage
}

func (p *Page) Offset() int {
	return (p.Number - 1) * p.PerPage
}

func (p *Page) HasPrevious() bool {
	return p.Number > 1
}

func (p *Page) HasNext() bool {
	return p.Number < p.NumPages
}

func (p *Page) HasOtherPages() bool {
	return p.HasPrevious() || p.HasNext()
}

func (p *Page) PreviousNumber() int {
	return p.Number - 1
}

func (p *Page) NextNumber() int {
	return p.Number + 1
}
