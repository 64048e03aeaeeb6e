package helpers

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/farellandr/eventure/internal/forms"
	"github.com/farellandr/eventure/internal/models"
	"github.com/farellandr/eventure/internal/pagination"
	"github.com/farellandr/eventure/internal/repository"
	"github.com/gin-gonic/gin"
)

// EventListParams are the raw filters of the event list view, echoed back
// into the filter form and the pagination links.
type EventListParams struct {
	Query    string
	Category string
	Start    string
	End      string
}

func ParseEventListParams(c *gin.Context) EventListParams {
	return EventListParams{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Start:    c.Query("start"),
		End:      c.Query("end"),
	}
}

// Filter converts the params into a repository filter. A category id or date
// that does not parse is ignored, and the date range is applied only when both
// bounds are present.
func (p EventListParams) Filter() repository.EventFilter {
	filter := repository.EventFilter{Text: strings.TrimSpace(p.Query)}

	if p.Category != "" {
		if id, err := forms.ParseID(p.Category); err == nil {
			filter.CategoryID = &id
		}
	}

	if p.Start != "" && p.End != "" {
		start, errStart := models.ParseDate(strings.TrimSpace(p.Start))
		end, errEnd := models.ParseDate(strings.TrimSpace(p.End))
		if errStart == nil && errEnd == nil {
			filter.Range = &repository.DateRange{Start: start, End: end}
		}
	}
	return filter
}

// Values returns the non-empty params as query values.
func (p EventListParams) Values() url.Values {
	v := url.Values{}
	for key, value := range map[string]string{
		"q":        p.Query,
		"category": p.Category,
		"start":    p.Start,
		"end":      p.End,
	} {
		if value != "" {
			v.Set(key, value)
		}
	}
	return v
}

// SelectedCategory reports whether id is the category currently filtered on.
func (p EventListParams) SelectedCategory(id uint) bool {
	return p.Category == fmt.Sprint(id)
}

// ParseID reads a positive id from the named path parameter.
func ParseID(c *gin.Context, param string) (uint, bool) {
	id, err := forms.ParseID(c.Param(param))
	return id, err == nil
}

// Pager renders the links of a paginated list, keeping the list's filters.
type Pager struct {
	*pagination.Page
	Query url.Values
}

func NewPager(page *pagination.Page, query url.Values) Pager {
	return Pager{Page: page, Query: query}
}

// URL is the relative link to page number n.
func (p Pager) URL(n int) string {
	v := url.Values{}
	for key, values := range p.Query {
		v[key] = values
	}
	v.Set("page", fmt.Sprint(n))
	return "?" + v.Encode()
}
