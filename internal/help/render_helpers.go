package help

import (
	"fmt"
	"regexp"
	"strings"
)

// Token is a run of text sharing one SGR colour code. Code is empty for
// undecorated text.
type Token struct {
	Text string
	Code string
}

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	var result strings.Builder

	inEscape := false

	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			continue
		}

		if inEscape {
			if r == 'm' {
				inEscape = false
			}

			continue
		}

		result.WriteRune(r)
	}

	return result.String()
}

// Tokenize splits a decorated string into runs of uniformly coloured text.
// A reset sequence (or an empty SGR) ends the current colour.
func Tokenize(s string) []Token {
	var tokens []Token

	code := ""
	last := 0

	for _, loc := range sgrPattern.FindAllStringSubmatchIndex(s, -1) {
		if loc[0] > last {
			tokens = append(tokens, Token{Text: s[last:loc[0]], Code: code})
		}

		code = s[loc[2]:loc[3]]
		if code == "0" {
			code = ""
		}

		last = loc[1]
	}

	if last < len(s) {
		tokens = append(tokens, Token{Text: s[last:], Code: code})
	}

	return tokens
}

// WriteOptionLine writes one aligned option line: the display key padded to
// KeyWidth, then the description and its suffixes.
func WriteOptionLine(b *strings.Builder, display, desc, allowed, label string, required bool) {
	fmt.Fprintf(b, "%s%-*s%s", indent, KeyWidth, display, desc)

	if allowed != "" {
		fmt.Fprintf(b, " (%s)", allowed)
	}

	fmt.Fprintf(b, ": %s", label)

	if required {
		b.WriteString(", Required")
	}

	b.WriteString("\n")
}

// unexported variables.
var (
	sgrPattern = regexp.MustCompile("\x1b\\[([0-9;]*)m") //nolint:gochecknoglobals // compiled once
)
