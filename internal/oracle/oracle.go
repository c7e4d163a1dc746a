// Package oracle wraps the external text-correction service. The core treats
// it as a pure text-in/text-out capability that may fail or time out; callers
// decide what to do with the candidate (see internal/correction).
package oracle

import "context"

// Oracle produces a corrected variant of the given text. Implementations
// must honor context cancellation; a deadline exceeded is an ordinary error.
// No guarantee is made about the output beyond "syntactically plausible text
// or an error".
type Oracle interface {
	Correct(ctx context.Context, text string) (string, error)
}
