package catalog

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo stores authors and works as documents whose _id is the entity id.
type MongoRepo struct {
	authors *mongo.Collection
	works   *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{
		authors: db.Collection("authors"),
		works:   db.Collection("works"),
	}
}

func (r *MongoRepo) SaveAuthor(ctx context.Context, a Author) error {
	_, err := r.authors.ReplaceOne(ctx, bson.M{"_id": a.ID}, a, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save author: %w", err)
	}
	return nil
}

func (r *MongoRepo) FindAuthorByID(ctx context.Context, id string) (Author, error) {
	var a Author
	if err := r.authors.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Author{}, fmt.Errorf("author %s: %w", id, ErrNotFound)
		}
		return Author{}, err
	}
	return a, nil
}

func (r *MongoRepo) SaveWork(ctx context.Context, w Work) error {
	w.CoverIDs = nonNil(w.CoverIDs)
	w.AuthorIDs = nonNil(w.AuthorIDs)
	w.AuthorNames = nonNil(w.AuthorNames)

	_, err := r.works.ReplaceOne(ctx, bson.M{"_id": w.ID}, w, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save work: %w", err)
	}
	return nil
}

func (r *MongoRepo) FindWorkByID(ctx context.Context, id string) (Work, error) {
	var w Work
	if err := r.works.FindOne(ctx, bson.M{"_id": id}).Decode(&w); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Work{}, fmt.Errorf("work %s: %w", id, ErrNotFound)
		}
		return Work{}, err
	}
	if w.PublishedDate != nil {
		d := w.PublishedDate.UTC()
		w.PublishedDate = &d
	}
	return w, nil
}
