package service

import "regexp"

// DateRange is an inclusive [Start, End] span; an empty End means the range
// is open-ended. After ValidateRange, Start <= End whenever End is set.
type DateRange struct {
	Start string
	End   string
}

// Prefix match only: trailing characters after a well-formed date are
// tolerated, matching what the API has always accepted.
var datePrefixRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// ValidateRange checks start (and end, when non-empty) against the
// yyyy-mm-dd prefix pattern and normalizes ordering: a reversed pair is
// swapped so queries always run ascending. The returned *ValidationError
// carries the original inputs, not the swapped ones.
func ValidateRange(start, end string) (DateRange, error) {
	verr := &ValidationError{Start: start, End: end}
	if !datePrefixRe.MatchString(start) {
		verr.BadStart = true
	}
	if end != "" && !datePrefixRe.MatchString(end) {
		verr.BadEnd = true
	}
	if verr.BadStart || verr.BadEnd {
		return DateRange{}, verr
	}
	if end != "" && start > end {
		start, end = end, start
	}
	return DateRange{Start: start, End: end}, nil
}
