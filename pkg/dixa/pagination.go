package dixa

import (
	"context"
)

// PageLister fetches one page of resources at a path. The concrete resource
// clients satisfy this for their list endpoints.
type PageLister[T any] interface {
	ListWithPath(ctx context.Context, path string, params *QueryParams) (*ListResponse[T], error)
}

// PageListerFunc adapts a function to the PageLister interface.
type PageListerFunc[T any] func(ctx context.Context, path string, params *QueryParams) (*ListResponse[T], error)

// ListWithPath implements PageLister.
func (f PageListerFunc[T]) ListWithPath(ctx context.Context, path string, params *QueryParams) (*ListResponse[T], error) {
	return f(ctx, path, params)
}

// PaginationOptions tunes FetchAllPages.
type PaginationOptions struct {
	// PageSize overrides the pageLimit sent with each request.
	PageSize int
	// MaxPages caps how many pages are fetched. 0 means no cap.
	MaxPages int
}

// DefaultPaginationOptions returns options with no page cap.
func DefaultPaginationOptions() *PaginationOptions {
	return &PaginationOptions{}
}

// PageIterator walks a cursor-paginated list endpoint item by item,
// following ListMeta.Next page keys until the cursor is exhausted.
type PageIterator[T any] struct {
	ctx     context.Context
	lister  PageLister[T]
	path    string
	params  *QueryParams
	items   []T
	pos     int
	nextKey *string
	started bool
}

// NewPageIterator creates an iterator over the list endpoint at path.
func NewPageIterator[T any](ctx context.Context, lister PageLister[T], path string, params *QueryParams) *PageIterator[T] {
	return &PageIterator[T]{
		ctx:    ctx,
		lister: lister,
		path:   path,
		params: params.clone(),
	}
}

// HasNext reports whether another item is available without advancing.
func (it *PageIterator[T]) HasNext() bool {
	if it.pos < len(it.items) {
		return true
	}

	if !it.started {
		return true
	}

	return it.nextKey != nil
}

// Next returns the next item, fetching the next page when the current one is
// exhausted.
func (it *PageIterator[T]) Next() (T, error) {
	var zero T

	if it.pos >= len(it.items) {
		if it.started && it.nextKey == nil {
			return zero, ErrNoMoreItems
		}

		if err := it.fetchPage(); err != nil {
			return zero, err
		}

		if len(it.items) == 0 {
			return zero, ErrNoMoreItems
		}
	}

	item := it.items[it.pos]
	it.pos++

	return item, nil
}

// All collects every remaining item across all pages.
func (it *PageIterator[T]) All() ([]T, error) {
	var all []T

	for it.HasNext() {
		if it.pos >= len(it.items) {
			if err := it.fetchPage(); err != nil {
				return all, err
			}

			if len(it.items) == 0 {
				break
			}
		}

		all = append(all, it.items[it.pos:]...)
		it.pos = len(it.items)
	}

	return all, nil
}

// ForEach applies fn to every remaining item, stopping at the first error.
func (it *PageIterator[T]) ForEach(fn func(T) error) error {
	for it.HasNext() {
		if it.pos >= len(it.items) {
			if err := it.fetchPage(); err != nil {
				return err
			}

			if len(it.items) == 0 {
				return nil
			}
		}

		for ; it.pos < len(it.items); it.pos++ {
			if err := fn(it.items[it.pos]); err != nil {
				return err
			}
		}
	}

	return nil
}

func (it *PageIterator[T]) fetchPage() error {
	if it.started {
		if it.nextKey == nil {
			it.items = nil
			it.pos = 0

			return nil
		}

		it.params.PageKey = *it.nextKey
	}

	page, err := it.lister.ListWithPath(it.ctx, it.path, it.params)
	if err != nil {
		return err
	}

	it.started = true
	it.items = page.Data
	it.pos = 0
	it.nextKey = nil

	if page.Meta != nil && page.Meta.Next != nil && *page.Meta.Next != "" {
		it.nextKey = page.Meta.Next
	}

	return nil
}

// FetchAllPages fetches every page from a list endpoint and returns the
// concatenated items. A nil options value fetches everything.
func FetchAllPages[T any](ctx context.Context, lister PageLister[T], path string, params *QueryParams, options *PaginationOptions) ([]T, error) {
	if options == nil {
		options = DefaultPaginationOptions()
	}

	effective := params.clone()
	if options.PageSize > 0 {
		effective.PageLimit = options.PageSize
	}

	var all []T

	pages := 0

	for {
		page, err := lister.ListWithPath(ctx, path, effective)
		if err != nil {
			return all, err
		}

		all = append(all, page.Data...)
		pages++

		if options.MaxPages > 0 && pages >= options.MaxPages {
			break
		}

		if page.Meta == nil || page.Meta.Next == nil || *page.Meta.Next == "" {
			break
		}

		effective.PageKey = *page.Meta.Next
	}

	return all, nil
}
