package derive

import (
	"fmt"
	"strings"
)

// JoinFields joins the non-empty parts with ", ", used for one-line
// address rendering.
func JoinFields(parts ...string) string {
	nonEmpty := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ", ")
}

// Pluralize renders "1 order" / "2 orders"; an explicit plural overrides
// the default "s" suffix.
func Pluralize(n int, singular string, plural ...string) string {
	word := singular
	if n != 1 {
		if len(plural) > 0 && plural[0] != "" {
			word = plural[0]
		} else {
			word = singular + "s"
		}
	}
	return fmt.Sprintf("%d %s", n, word)
}
