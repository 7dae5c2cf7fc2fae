package wording

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gertd/go-pluralize"
)

var inflector = pluralize.NewClient()

// Pluralize inflects the last word of phrase for count: singular at 1, plural otherwise.
// Leading words and whitespace are preserved.
func Pluralize(phrase string, count int) string {
	trimmed := strings.TrimRightFunc(phrase, unicode.IsSpace)
	if trimmed == "" {
		return phrase
	}

	start := 0
	if i := strings.LastIndexFunc(trimmed, unicode.IsSpace); i >= 0 {
		_, size := utf8.DecodeRuneInString(trimmed[i:])
		start = i + size
	}

	word := trimmed[start:]
	return trimmed[:start] + inflector.Pluralize(word, count, false) + phrase[len(trimmed):]
}
