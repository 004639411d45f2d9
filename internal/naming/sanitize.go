// Package naming converts display titles into safe output filenames and
// resolves target-path collisions.
package naming

import (
	"regexp"
	"strings"
)

// maxStemLength bounds sanitized stems in characters (not bytes).
const maxStemLength = 200

// Ext is the fixed extension appended to sanitized stems.
const Ext = ".html"

// illegalChars substitutes each filesystem-unsafe character with an
// underscore. Substitution, not deletion: "a/b" becomes "a_b".
var illegalChars = strings.NewReplacer(
	"<", "_",
	">", "_",
	":", "_",
	`"`, "_",
	"/", "_",
	`\`, "_",
	"|", "_",
	"?", "_",
	"*", "_",
)

var (
	reWhitespaceRun = regexp.MustCompile(`\s+`)
	rePeriodRun     = regexp.MustCompile(`\.{2,}`)
)

// Sanitize converts an arbitrary display title into a safe filename stem:
// unsafe characters become underscores, whitespace runs collapse to a single
// space, runs of two or more periods collapse to one, and the result is
// trimmed and truncated to 200 characters. Callers append [Ext].
func Sanitize(title string) string {
	s := illegalChars.Replace(title)
	s = reWhitespaceRun.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	s = rePeriodRun.ReplaceAllString(s, ".")

	if r := []rune(s); len(r) > maxStemLength {
		s = string(r[:maxStemLength])
	}
	return s
}
