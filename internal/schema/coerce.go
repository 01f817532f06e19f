package schema

import (
	"math/big"
	"regexp"
	"strconv"

	"github.com/0xa1bed0/dli/internal/labels"
)

var digitsPattern = regexp.MustCompile(`^[0-9]+$`)

// Coerce converts label values for validation. A value made only of ASCII
// digits becomes an int64, or a *big.Int when it does not fit; anything else,
// including "", "-1" and "+1", stays a string. set is not modified.
func Coerce(set *labels.Set) map[string]any {
	out := make(map[string]any, set.Len())
	for _, key := range set.Keys() {
		value, _ := set.Get(key)
		out[key] = coerceValue(value)
	}
	return out
}

func coerceValue(value string) any {
	if !digitsPattern.MatchString(value) {
		return value
	}
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return n
	}
	n, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return value
	}
	return n
}
