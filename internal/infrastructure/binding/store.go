package binding

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	repository "fotkaj/internal/domain/repository/binding"
)

const keyPrefix = "binding:"

type Config struct {
	URI          string
	QueryTimeout int64 `yaml:"query_timeout_in_ms"`
}

// Store keeps one redis hash per sender so bindings survive restarts and are
// shared across handler instances. Writes are last-write-wins upserts.
type Store struct {
	redis        *redis.Client
	queryTimeout time.Duration
}

func New(cfg Config) (*Store, error) {
	opt, err := redis.ParseURL(cfg.URI)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Store{
		redis:        rdb,
		queryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}, nil
}

func (s *Store) Bind(ctx context.Context, msisdn, albumID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	return s.redis.HSet(ctx, keyPrefix+msisdn,
		"album_id", albumID,
		"bound_at", time.Now().UTC().Format(time.RFC3339),
	).Err()
}

func (s *Store) Resolve(ctx context.Context, msisdn string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	albumID, err := s.redis.HGet(ctx, keyPrefix+msisdn, "album_id").Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", repository.ErrUnbound
		}

		return "", err
	}

	return albumID, nil
}

func (s *Store) Close() error {
	return s.redis.Close()
}
