// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"strings"
	"unicode"
)

// Tokenize lower-cases text and splits it on runs of non-alphanumeric
// characters, discarding empty tokens. The same tokenizer is applied to
// documents at build time and to queries at search time; relevance scoring
// depends on the two staying identical.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
