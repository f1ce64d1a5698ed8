// Package kv defines the key-value contract the day store persists through.
package kv

import "context"

// Provider is a string-keyed store with no cross-key transactions.
// Get reports ok=false when the key has never been written.
type Provider interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Describer is implemented by providers that can name their backing target
// without leaking credentials.
type Describer interface {
	Describe() string
}

// Describe returns a printable name for p.
func Describe(p Provider) string {
	if d, ok := p.(Describer); ok {
		return d.Describe()
	}
	return "unknown"
}
