package service

import (
	"context"
	"fmt"

	"taxipark/pkg/paginator"
)

// ListQuery is what a list page receives from the request.
type ListQuery struct {
	Text string
	Page string
}

// ListResult is one page of a filtered list.
type ListResult[T any] struct {
	Objects []*T
	Page    paginator.Page
	Text    string
}

type searchable[T any] interface {
	Count(ctx context.Context, text string) (int, error)
	Search(ctx context.Context, text string, limit, offset int) ([]*T, error)
}

// listPage counts the filtered set, resolves the requested page and loads
// only that window. paginator.ErrInvalidPage is returned untouched.
func listPage[T any](ctx context.Context, src searchable[T], q ListQuery, perPage int) (*ListResult[T], error) {
	count, err := src.Count(ctx, q.Text)
	if err != nil {
		return nil, fmt.Errorf("count: %w", err)
	}

	page, err := paginator.New(count, perPage).Page(q.Page)
	if err != nil {
		return nil, err
	}

	objects := []*T{}
	if count > 0 {
		objects, err = src.Search(ctx, q.Text, page.Limit(), page.Offset())
		if err != nil {
			return nil, fmt.Errorf("search: %w", err)
		}
	}

	return &ListResult[T]{Objects: objects, Page: page, Text: q.Text}, nil
}
