package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisRepo stores authors and works as JSON strings under
// <prefix>author:<id> and <prefix>work:<id>. Keys never expire.
type RedisRepo struct {
	client *redis.Client
	prefix string
}

func NewRedisRepo(client *redis.Client, prefix string) *RedisRepo {
	return &RedisRepo{client: client, prefix: prefix}
}

func (r *RedisRepo) authorKey(id string) string { return r.prefix + "author:" + id }
func (r *RedisRepo) workKey(id string) string   { return r.prefix + "work:" + id }

func (r *RedisRepo) SaveAuthor(ctx context.Context, a Author) error {
	payload, err := json.Marshal(a)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.authorKey(a.ID), payload, 0).Err(); err != nil {
		return fmt.Errorf("save author: %w", err)
	}
	return nil
}

func (r *RedisRepo) FindAuthorByID(ctx context.Context, id string) (Author, error) {
	var a Author
	if err := r.get(ctx, r.authorKey(id), &a); err != nil {
		return Author{}, fmt.Errorf("author %s: %w", id, err)
	}
	return a, nil
}

func (r *RedisRepo) SaveWork(ctx context.Context, w Work) error {
	w.CoverIDs = nonNil(w.CoverIDs)
	w.AuthorIDs = nonNil(w.AuthorIDs)
	w.AuthorNames = nonNil(w.AuthorNames)

	payload, err := json.Marshal(w)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.workKey(w.ID), payload, 0).Err(); err != nil {
		return fmt.Errorf("save work: %w", err)
	}
	return nil
}

func (r *RedisRepo) FindWorkByID(ctx context.Context, id string) (Work, error) {
	var w Work
	if err := r.get(ctx, r.workKey(id), &w); err != nil {
		return Work{}, fmt.Errorf("work %s: %w", id, err)
	}
	return w, nil
}

func (r *RedisRepo) get(ctx context.Context, key string, dst any) error {
	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		return err
	}
	return json.Unmarshal(val, dst)
}
