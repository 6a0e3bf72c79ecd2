package evaluation

import (
	"fmt"
	"strings"
)

// MissingAnswersError refuses scoring when required questions are absent.
// No partial score is ever computed.
type MissingAnswersError struct {
	Missing []string
}

func (e *MissingAnswersError) Error() string {
	return fmt.Sprintf("missing answers: %s", strings.Join(e.Missing, ", "))
}

// OutOfRangeError rejects a score outside its declared bounds. Callers are
// expected to validate first; the engine re-validates and refuses rather than
// clamping.
type OutOfRangeError struct {
	Key   string
	Value float64
	Min   float64
	Max   float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("answer %s: score %v outside [%v, %v]", e.Key, e.Value, e.Min, e.Max)
}
