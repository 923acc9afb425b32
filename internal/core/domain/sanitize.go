package domain

import "regexp"

var (
	newlineRuns = regexp.MustCompile(`\n+`)
	spaceRuns   = regexp.MustCompile(` +`)
)

// Sanitize collapses every run of newlines into one newline and every run
// of spaces into one space. Tabs and carriage returns are left alone.
// It is applied once, as the last step before text reaches a caller.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}
	text = newlineRuns.ReplaceAllString(text, "\n")
	return spaceRuns.ReplaceAllString(text, " ")
}
