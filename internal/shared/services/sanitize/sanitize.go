// Package sanitize reduces free text typed by agents to plain text.
package sanitize

import (
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

type TextSanitizer interface {
	// PlainText strips markup, trims whitespace and truncates to maxRunes
	// (0 means no limit).
	PlainText(s string, maxRunes int) string
}

type textSanitizerImpl struct {
	policy *bluemonday.Policy
}

func NewTextSanitizer() TextSanitizer {
	return &textSanitizerImpl{policy: bluemonday.StrictPolicy()}
}

func (s *textSanitizerImpl) PlainText(in string, maxRunes int) string {
	// the strict policy entity-encodes what it keeps
	out := html.UnescapeString(s.policy.Sanitize(in))
	out = strings.TrimSpace(out)

	if maxRunes > 0 && utf8.RuneCountInString(out) > maxRunes {
		runes := []rune(out)
		out = strings.TrimSpace(string(runes[:maxRunes]))
	}
	return out
}
