package textfreq

import "errors"

var (
	ErrInvalidArity    = errors.New("n-gram arity must be 1, 2 or 3")
	ErrNonPositiveTopK = errors.New("top k must be positive")
)

func ValidArity(n int) bool {
	return n >= 1 && n <= 3
}
