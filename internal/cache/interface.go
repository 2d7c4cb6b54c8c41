package cache

import (
	"context"
	"time"
)

// Cache is a fail-open key/value port: callers treat errors as misses and
// must never fail a request because of it.
type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

const (
	BookListKeyPrefix = "books"
	BookListAllKey    = "books:all"
)

// BookListKey derives the listing cache key from the search keyword;
// "books:all" when no keyword is supplied.
func BookListKey(keyword string) string {
	if keyword == "" {
		return BookListAllKey
	}

	return Key(BookListKeyPrefix, keyword)
}
