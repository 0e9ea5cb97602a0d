package utils

import "fmt"

// EnumValidator restricts a string field to a closed vocabulary. The enums
// here double as prompt instructions, so schema and sanitizer must agree on
// the exact strings.
func EnumValidator(allowed ...string) func(string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; ok {
			return nil
		}
		return fmt.Errorf("%q is not one of %v", s, allowed)
	}
}
