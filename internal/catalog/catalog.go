package catalog

import (
	"time"
)

// UnknownAuthor stands in for author ids that are not in the author store.
const UnknownAuthor = "Unknown Author"

type Author struct {
	ID           string `json:"id" bson:"_id"`
	Name         string `json:"name" bson:"name"`
	PersonalName string `json:"personal_name" bson:"personal_name"`
}

type Work struct {
	ID            string     `json:"id" bson:"_id"`
	Title         string     `json:"title" bson:"title"`
	Description   *string    `json:"description,omitempty" bson:"description,omitempty"`
	PublishedDate *time.Time `json:"published_date,omitempty" bson:"published_date,omitempty"`
	CoverIDs      []string   `json:"cover_ids" bson:"cover_ids"`
	AuthorIDs     []string   `json:"author_ids" bson:"author_ids"`
	AuthorNames   []string   `json:"author_names" bson:"author_names"`
}

// ParsedWork is a work record as read from the dump. HasAuthors is false when
// the record carries no authors array; such works are never persisted.
type ParsedWork struct {
	Work       Work
	HasAuthors bool
}
