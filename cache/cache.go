// Package cache is the key-value store behind catalog caching and user
// sessions. Values are opaque bytes with an optional time-to-live.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// ErrNotFound is returned when a key is absent or has expired.
var ErrNotFound = errors.New("cache: key not found")

// Key prefixes. Sessions and courses share the id space of their records,
// the prefixes keep them apart.
const (
	SessionKeyPrefix = "session:"
	CourseKeyPrefix  = "course:"
	AllCoursesKey    = "allCourses"
)

// Store is a key-value store with per-key expiry.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	// Set writes value under key. A ttl of zero means the key never expires.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

func SessionKey(userID string) string { return SessionKeyPrefix + userID }

func CourseKey(courseID string) string { return CourseKeyPrefix + courseID }

// GetJSON decodes the value stored under key into dst.
func GetJSON(ctx context.Context, s Store, key string, dst any) error {
	data, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("cache: decode %s: %w", key, err)
	}
	return nil
}

// SetJSON encodes value and stores it under key.
func SetJSON(ctx context.Context, s Store, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", key, err)
	}
	return s.Set(ctx, key, data, ttl)
}
