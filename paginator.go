package venture

import (
	"context"
	"errors"
)

// Paginator walks the pages produced by repeatedly re-issuing a paged
// request. Pages are strictly sequential: a new request is only issued after
// the previous page has been folded back through Advance.
//
// The sequence ends when Advance reports no further page or when a page
// fails; either way the paginator is finished for good and NextPage returns
// ErrNoMorePages without issuing anything. A failed page is reported once,
// after all pages received before it.
type Paginator[C, T any] struct {
	client  C
	request PagedRequest[C, T]
	next    Response[T]
}

// Paginate builds a paginator over request, starting at its current page.
func Paginate[C, T any](client C, request PagedRequest[C, T]) *Paginator[C, T] {
	return &Paginator[C, T]{client: client, request: request}
}

// HasNext reports whether another page can be requested.
func (p *Paginator[C, T]) HasNext() bool {
	return p.request != nil
}

// NextPage retrieves the next page.
func (p *Paginator[C, T]) NextPage(ctx context.Context) (T, error) {
	var zero T

	if p.request == nil {
		return zero, ErrNoMorePages
	}

	if p.next == nil {
		p.next = p.request.Send(p.client)
	}

	page, err := p.next.Await(ctx)
	p.next = nil
	if err != nil {
		p.request = nil
		if ctx.Err() != nil {
			var ce *CanceledError
			if !errors.As(err, &ce) {
				err = &CanceledError{Err: err}
			}
		}
		return zero, err
	}

	// Advance runs after the page arrived, so the last page is still
	// yielded on the call that discovers the sequence is over.
	if !p.request.Advance(page) {
		p.request = nil
	}

	return page, nil
}

// AllPages drains the paginator and returns every remaining page in order.
// On failure the pages received before the error are returned with it.
func (p *Paginator[C, T]) AllPages(ctx context.Context) ([]T, error) {
	var pages []T
	for p.HasNext() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return pages, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}
