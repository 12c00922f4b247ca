package dictionary

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/KirkDiggler/wordchain/internal/repositories/dictionary Source

import (
	"context"
)

// Source defines the authoritative dictionary behind the cache
type Source interface {
	// Lookup reports whether word is a known dictionary word
	Lookup(ctx context.Context, word string) (bool, error)
}
