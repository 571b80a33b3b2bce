package service

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoMatch reports that a validated range selected zero observations.
// Distinct from a stats result with zero values; callers render it as a
// "no records matched" condition.
var ErrNoMatch = errors.New("no records matched")

// ValidationError reports date inputs that fail the yyyy-mm-dd format check.
// Start and End carry the original caller-supplied values so messages can
// echo them back unchanged.
type ValidationError struct {
	Start    string
	End      string
	BadStart bool
	BadEnd   bool
}

func (e *ValidationError) Error() string {
	var bad []string
	if e.BadStart {
		bad = append(bad, fmt.Sprintf("start %q", e.Start))
	}
	if e.BadEnd {
		bad = append(bad, fmt.Sprintf("end %q", e.End))
	}
	return fmt.Sprintf("invalid date %s: want yyyy-mm-dd", strings.Join(bad, " and "))
}
