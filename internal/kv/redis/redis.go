package redis

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	goredis "github.com/redis/go-redis/v9"

	"github.com/julianstephens/score100/internal/constants"
)

type Store struct {
	client *goredis.Client
	prefix string
	addr   string
}

// New parses a redis:// or rediss:// URL. Keys are stored as "<prefix>:<key>".
func New(rawURL, prefix string) (*Store, error) {
	opts, err := goredis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	opts.DialTimeout = constants.RedisDialTimeout
	opts.ReadTimeout = constants.RedisIOTimeout
	opts.WriteTimeout = constants.RedisIOTimeout
	opts.MaxRetries = 3

	if prefix == "" {
		prefix = constants.AppName
	}

	return &Store{
		client: goredis.NewClient(opts),
		prefix: prefix,
		addr:   redactURL(rawURL),
	}, nil
}

// Init verifies the server is reachable.
func (s *Store) Init() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*constants.RedisDialTimeout)
	defer cancel()

	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis at %s: %w", s.addr, err)
	}
	return nil
}

// Key namespaces a store key under the configured prefix.
func (s *Store) Key(parts ...string) string {
	var sb strings.Builder
	sb.WriteString(s.prefix)
	for _, part := range parts {
		if part != "" {
			sb.WriteString(":")
			sb.WriteString(part)
		}
	}
	return sb.String()
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.Key(key)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.Key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) Describe() string { return s.addr }

// redactURL drops any password from a connection URL.
func redactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "redis"
	}
	return u.Redacted()
}
