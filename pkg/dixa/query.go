package dixa

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryParams represents common list options for Dixa endpoints: cursor
// pagination (pageLimit/pageKey) plus endpoint-specific filters such as
// email, phone, or channel.
type QueryParams struct {
	PageLimit int
	PageKey   string
	Filters   map[string][]string
}

// NewQueryParams creates an empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: make(map[string][]string),
	}
}

// WithPageLimit sets the page size.
func (q *QueryParams) WithPageLimit(limit int) *QueryParams {
	q.PageLimit = limit

	return q
}

// WithPageKey sets the opaque cursor returned in ListMeta.Next.
func (q *QueryParams) WithPageKey(key string) *QueryParams {
	q.PageKey = key

	return q
}

// WithFilter appends values to a named filter parameter.
func (q *QueryParams) WithFilter(name string, values ...string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string][]string)
	}

	q.Filters[name] = append(q.Filters[name], values...)

	return q
}

// ToValues converts the params to url.Values for the transport layer.
// Multi-valued filters are joined with commas.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q == nil {
		return values
	}

	if q.PageLimit > 0 {
		values.Set("pageLimit", strconv.Itoa(q.PageLimit))
	}

	if q.PageKey != "" {
		values.Set("pageKey", q.PageKey)
	}

	for name, filterValues := range q.Filters {
		if len(filterValues) > 0 {
			values.Set(name, strings.Join(filterValues, ","))
		}
	}

	return values
}

// clone returns a shallow copy with its own filter map, so pagination can
// advance the cursor without mutating the caller's params.
func (q *QueryParams) clone() *QueryParams {
	out := NewQueryParams()

	if q == nil {
		return out
	}

	out.PageLimit = q.PageLimit
	out.PageKey = q.PageKey

	for name, values := range q.Filters {
		out.Filters[name] = append([]string(nil), values...)
	}

	return out
}
