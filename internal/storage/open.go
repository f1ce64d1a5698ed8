package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/score100/internal/config"
	"github.com/julianstephens/score100/internal/keyring"
	"github.com/julianstephens/score100/internal/kv"
	"github.com/julianstephens/score100/internal/kv/jsonfile"
	"github.com/julianstephens/score100/internal/kv/memory"
	"github.com/julianstephens/score100/internal/kv/postgres"
	"github.com/julianstephens/score100/internal/kv/redis"
	"github.com/julianstephens/score100/internal/kv/sqlite"
)

// Kind identifies which adapter a store target selects.
type Kind string

const (
	KindMemory   Kind = "memory"
	KindJSON     Kind = "json"
	KindSQLite   Kind = "sqlite"
	KindPostgres Kind = "postgres"
	KindRedis    Kind = "redis"
)

// KeyringTarget makes the postgres adapter read its connection string from the OS keyring.
const KeyringTarget = "postgres:keyring"

// Options configures OpenProvider.
type Options struct {
	Target      string
	RedisPrefix string
}

// KindOf classifies a store target string.
func KindOf(target string) Kind {
	switch {
	case strings.HasPrefix(target, "memory:"):
		return KindMemory
	case target == KeyringTarget,
		strings.HasPrefix(target, "postgres://"),
		strings.HasPrefix(target, "postgresql://"):
		return KindPostgres
	case strings.HasPrefix(target, "redis://"), strings.HasPrefix(target, "rediss://"):
		return KindRedis
	case strings.HasSuffix(strings.ToLower(target), ".json"):
		return KindJSON
	default:
		return KindSQLite
	}
}

// OpenProvider builds and initializes the adapter named by opts.Target.
func OpenProvider(opts Options) (kv.Provider, error) {
	target := strings.TrimSpace(opts.Target)
	if target == "" {
		return nil, errors.New("store target cannot be empty")
	}

	switch KindOf(target) {
	case KindMemory:
		return memory.New(), nil

	case KindPostgres:
		connStr := target
		if target == KeyringTarget {
			var err error
			connStr, err = keyring.GetConnectionString()
			if err != nil {
				return nil, fmt.Errorf("failed to read connection string from keyring: %w", err)
			}
			// The keyring is encrypted, so a password is acceptable there.
			if err := postgres.ValidateConnString(connStr); err != nil && !errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, err
			}
		} else if err := postgres.ValidateConnString(connStr); err != nil {
			return nil, err
		}
		store := postgres.New(connStr)
		if err := store.Init(); err != nil {
			return nil, err
		}
		return store, nil

	case KindRedis:
		store, err := redis.New(target, opts.RedisPrefix)
		if err != nil {
			return nil, err
		}
		if err := store.Init(); err != nil {
			store.Close()
			return nil, err
		}
		return store, nil

	case KindJSON:
		path, err := config.ExpandPath(target)
		if err != nil {
			return nil, err
		}
		store := jsonfile.NewStore(path)
		if err := store.Init(); err != nil {
			return nil, err
		}
		return store, nil

	default:
		path, err := config.ExpandPath(target)
		if err != nil {
			return nil, err
		}
		store := sqlite.NewStore(path)
		if err := store.Init(); err != nil {
			return nil, err
		}
		return store, nil
	}
}

// Open returns a Repository over the adapter named by opts.Target.
func Open(opts Options) (*Repository, error) {
	p, err := OpenProvider(opts)
	if err != nil {
		return nil, err
	}
	return New(p), nil
}

// SQLitePath returns the database file behind p when p is the sqlite adapter.
func SQLitePath(p kv.Provider) (string, bool) {
	s, ok := p.(*sqlite.Store)
	if !ok {
		return "", false
	}
	return s.Path(), true
}
