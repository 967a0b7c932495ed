package venture

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// AwaitAll drives independent responses concurrently and collects their
// results in argument order. The first failure cancels the remaining awaits
// and is returned. Responses must belong to independent sends; the library's
// combinators never share state between instances, so their responses always
// qualify.
func AwaitAll[T any](ctx context.Context, responses ...Response[T]) ([]T, error) {
	g, gctx := errgroup.WithContext(ctx)

	results := make([]T, len(responses))
	for i, resp := range responses {
		i, resp := i, resp
		g.Go(func() error {
			value, err := resp.Await(gctx)
			if err != nil {
				return err
			}
			results[i] = value
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
