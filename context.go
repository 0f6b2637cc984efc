package gqlpager

import "context"

type paginationKey struct{}

// Pagination is what a paginated field resolver finds in its context.
type Pagination struct {
	Params
}

// WithPagination stores p in ctx.
func WithPagination(ctx context.Context, p *Pagination) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, paginationKey{}, p)
}

// FromContext returns the Pagination stored in ctx by a paginated field.
func FromContext(ctx context.Context) (*Pagination, bool) {
	if ctx == nil {
		return nil, false
	}

	p, ok := ctx.Value(paginationKey{}).(*Pagination)
	if !ok || p == nil {
		return nil, false
	}

	return p, true
}

// ParamsFromContext is a shortcut for FromContext(ctx).Params.
func ParamsFromContext(ctx context.Context) (Params, bool) {
	p, ok := FromContext(ctx)
	if !ok {
		return Params{}, false
	}

	return p.Params, true
}
