// Package format holds the display masks applied to Brazilian tax ids and
// phone numbers.
package format

import (
	"regexp"
	"strings"
)

const (
	cnpjDigits  = 14
	phoneDigits = 11
)

var (
	nonDigit = regexp.MustCompile(`\D`)

	cnpjSteps = []struct {
		re   *regexp.Regexp
		repl string
	}{
		{regexp.MustCompile(`^(\d{2})(\d)`), "$1.$2"},
		{regexp.MustCompile(`^(\d{2})\.(\d{3})(\d)`), "$1.$2.$3"},
		{regexp.MustCompile(`\.(\d{3})(\d)`), ".$1/$2"},
		{regexp.MustCompile(`(\d{4})(\d)`), "$1-$2"},
	}
)

// Digits strips every non-digit character.
func Digits(v string) string {
	return nonDigit.ReplaceAllString(v, "")
}

// MaskCNPJ formats up to 14 digits as XX.XXX.XXX/XXXX-XX, masking partial
// input progressively. Formatting characters in v are ignored, so the mask is
// idempotent.
func MaskCNPJ(v string) string {
	d := truncate(Digits(v), cnpjDigits)
	for _, step := range cnpjSteps {
		d = replaceFirst(step.re, d, step.repl)
	}
	return d
}

// MaskPhone formats up to 11 digits as (XX) XXXXX-XXXX, or (XX) XXXX-XXXX for
// ten digits or fewer. Input without digits masks to "".
func MaskPhone(v string) string {
	d := truncate(Digits(v), phoneDigits)
	switch {
	case d == "":
		return ""
	case len(d) <= 2:
		return "(" + d
	case len(d) <= 6:
		return "(" + d[:2] + ") " + d[2:]
	case len(d) <= 10:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	default:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	}
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// replaceFirst expands repl for the leftmost match only.
func replaceFirst(re *regexp.Regexp, s, repl string) string {
	m := re.FindStringSubmatchIndex(s)
	if m == nil {
		return s
	}
	var b strings.Builder
	b.WriteString(s[:m[0]])
	b.Write(re.ExpandString(nil, repl, s, m))
	b.WriteString(s[m[1]:])
	return b.String()
}
