package combo

import "errors"

// ErrInvariantViolation marks a broken pruning or resolution rule. It is never
// caused by input and callers should treat it as fatal.
var ErrInvariantViolation = errors.New("invariant violation")
