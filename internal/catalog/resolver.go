package catalog

import (
	"context"
	"errors"
	"fmt"
)

// AuthorFinder is the read side of AuthorRepository.
type AuthorFinder interface {
	FindAuthorByID(ctx context.Context, id string) (Author, error)
}

// Resolver turns author ids into display names. Every call looks each id up
// again; nothing is cached between calls.
type Resolver struct {
	authors AuthorFinder
}

func NewResolver(authors AuthorFinder) *Resolver {
	return &Resolver{authors: authors}
}

// Names returns one name per id, in order. Ids missing from the store resolve
// to UnknownAuthor. Any other store error is returned.
func (r *Resolver) Names(ctx context.Context, ids []string) ([]string, error) {
	names := make([]string, len(ids))
	for i, id := range ids {
		author, err := r.authors.FindAuthorByID(ctx, id)
		switch {
		case errors.Is(err, ErrNotFound):
			names[i] = UnknownAuthor
		case err != nil:
			return nil, fmt.Errorf("find author %s: %w", id, err)
		default:
			names[i] = author.Name
		}
	}
	return names, nil
}
