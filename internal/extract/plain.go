package extract

import (
	"strings"
	"unicode/utf8"
)

// extractPlain force-decodes to valid UTF-8. Invalid byte sequences are
// replaced rather than failing: a slightly mangled text file is still a
// usable contract document.
func extractPlain(content []byte) (Result, error) {
	text := string(content)
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, "�")
	}
	return Result{Text: text}, nil
}
