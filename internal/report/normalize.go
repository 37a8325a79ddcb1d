package report

import (
	"regexp"
	"strings"
)

var reLineBreaks = regexp.MustCompile(`[\r\n]+`)

// NormalizedText holds the two variants of one rendered report.
// Display keeps the original number formatting and is the only safe
// source for names and dates. Numeric has the report's locale
// separators rewritten ('.' thousands dropped, ',' decimal becomes '.')
// and is the only safe source for number parsing.
type NormalizedText struct {
	Display string
	Numeric string
}

func Normalize(raw string) NormalizedText {
	display := strings.TrimSpace(reLineBreaks.ReplaceAllString(raw, " "))
	numeric := strings.ReplaceAll(display, ".", "")
	numeric = strings.ReplaceAll(numeric, ",", ".")
	return NormalizedText{Display: display, Numeric: numeric}
}
