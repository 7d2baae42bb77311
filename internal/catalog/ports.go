package catalog

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mocks/mock_ports.go -package=mocks

// AuthorRepository persists authors keyed by their stripped Open Library id.
// FindAuthorByID returns ErrNotFound when no author has the id.
type AuthorRepository interface {
	SaveAuthor(ctx context.Context, author Author) error
	FindAuthorByID(ctx context.Context, id string) (Author, error)
}

// WorkRepository persists works keyed by their stripped Open Library id.
// FindWorkByID returns ErrNotFound when no work has the id.
type WorkRepository interface {
	SaveWork(ctx context.Context, work Work) error
	FindWorkByID(ctx context.Context, id string) (Work, error)
}
