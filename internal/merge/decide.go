package merge

import (
	"strings"
	"time"
)

// normalizeString lowercases and trims for comparison. Values are written
// back in their original form; normalization only decides equality.
func normalizeString(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func strPresent(p *string) bool {
	return p != nil && strings.TrimSpace(*p) != ""
}

// decideString returns the value to write, or nil to leave the field alone.
//
// In full mode the candidate fills a blank field and never overwrites a
// populated one. In incremental mode the candidate wins only when it differs
// from the baseline; a candidate that merely restates the baseline must not
// clobber an edit the user made since the last analysis.
func decideString(full bool, baseline, candidate, live *string) *string {
	if !strPresent(candidate) {
		return nil
	}
	if full {
		if strPresent(live) {
			return nil
		}
		return candidate
	}
	if strPresent(baseline) && normalizeString(*baseline) == normalizeString(*candidate) {
		return nil
	}
	return candidate
}

// decideFloat follows the same rules with raw float equality for the
// baseline comparison.
func decideFloat(full bool, baseline, candidate, live *float64) *float64 {
	if candidate == nil {
		return nil
	}
	if full {
		if live != nil {
			return nil
		}
		return candidate
	}
	if baseline != nil && *baseline == *candidate {
		return nil
	}
	return candidate
}

func decideInt(full bool, baseline, candidate, live *int) *int {
	if candidate == nil {
		return nil
	}
	if full {
		if live != nil {
			return nil
		}
		return candidate
	}
	if baseline != nil && *baseline == *candidate {
		return nil
	}
	return candidate
}

// decideBool has no notion of blank, so full mode always applies a non-nil
// candidate. Incremental mode still defers to the baseline on equality.
func decideBool(full bool, baseline, candidate *bool) *bool {
	if candidate == nil {
		return nil
	}
	if full {
		return candidate
	}
	if baseline != nil && *baseline == *candidate {
		return nil
	}
	return candidate
}

// decideDate parses candidate and baseline ISO dates and applies the string
// rules on the calendar day.
func decideDate(full bool, baseline, candidate *string, live *time.Time) *time.Time {
	if !strPresent(candidate) {
		return nil
	}
	cd, err := time.Parse("2006-01-02", strings.TrimSpace(*candidate))
	if err != nil {
		return nil
	}
	if full {
		if live != nil {
			return nil
		}
		return &cd
	}
	if strPresent(baseline) {
		if bd, err := time.Parse("2006-01-02", strings.TrimSpace(*baseline)); err == nil && bd.Equal(cd) {
			return nil
		}
	}
	return &cd
}
