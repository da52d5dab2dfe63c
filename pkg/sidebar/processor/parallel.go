package processor

import "golang.org/x/sync/errgroup"

// mapOrdered runs fn on every element concurrently and returns the results
// in input order. The first error is returned as soon as its call fails;
// the remaining calls keep running and their results are discarded.
func mapOrdered[T, R any](items []T, fn func(T) (R, error)) ([]R, error) {
	if len(items) == 0 {
		return nil, nil
	}

	results := make([]R, len(items))
	errCh := make(chan error, 1)
	done := make(chan struct{})

	var g errgroup.Group
	for i, item := range items {
		g.Go(func() error {
			r, err := fn(item)
			if err != nil {
				select {
				case errCh <- err:
				default:
				}
				return err
			}
			results[i] = r
			return nil
		})
	}
	go func() {
		_ = g.Wait()
		close(done)
	}()

	select {
	case err := <-errCh:
		return nil, err
	case <-done:
	}

	// A failing call sends before it returns, so a failure is visible here.
	select {
	case err := <-errCh:
		return nil, err
	default:
		return results, nil
	}
}

// flatMapOrdered is mapOrdered for functions producing several results per
// input, concatenated in input order.
func flatMapOrdered[T, R any](items []T, fn func(T) ([]R, error)) ([]R, error) {
	groups, err := mapOrdered(items, fn)
	if err != nil {
		return nil, err
	}

	n := 0
	for _, g := range groups {
		n += len(g)
	}
	flat := make([]R, 0, n)
	for _, g := range groups {
		flat = append(flat, g...)
	}
	return flat, nil
}
