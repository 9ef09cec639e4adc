package record

import (
	"strings"

	"dialpool/internal/shared/errors"
)

const identifierLength = 14

// Identifier is a normalized 14-digit company registry number.
type Identifier string

// NormalizeIdentifier strips every non-digit from raw and requires exactly
// 14 digits to remain.
func NormalizeIdentifier(raw string) (Identifier, error) {
	var b strings.Builder
	b.Grow(identifierLength)
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() != identifierLength {
		return "", errors.NewMalformedIdentifierError(raw)
	}
	return Identifier(b.String()), nil
}

func (i Identifier) String() string {
	return string(i)
}

// Formatted renders the identifier as XX.XXX.XXX/XXXX-XX.
func (i Identifier) Formatted() string {
	s := string(i)
	if len(s) != identifierLength {
		return s
	}
	return s[0:2] + "." + s[2:5] + "." + s[5:8] + "/" + s[8:12] + "-" + s[12:14]
}
