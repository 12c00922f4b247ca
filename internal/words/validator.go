package words

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_validator.go github.com/KirkDiggler/wordchain/internal/words Validator

// Validator is the injected dictionary capability. A returned error means the
// capability is unavailable: the word is neither accepted nor rejected, and
// the caller surfaces a try-again result instead.
type Validator interface {
	IsValid(ctx context.Context, word string) (bool, error)
}
