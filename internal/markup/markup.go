// Package markup strips 5e.tools inline directives such as {@spell fire bolt|phb}
// down to their display text.
package markup

import "regexp"

var (
	// {@chance 25|25 percent} keeps the trailing label
	chancePattern = regexp.MustCompile(`\{@chance .*?(?P<chance>(?:\w| )+?)\}`)

	// {@tag value|source|...} keeps the first field when it is plain text
	tagPattern = regexp.MustCompile(`\{@(?:(?:\w| )+?) (?P<value>[a-zA-Z0-9\-_',./+ ]+?)(?:\|.*?)?\}`)

	// {@note ...} whatever the tag pass could not handle
	notePattern = regexp.MustCompile(`\{@note (?P<note>.*?)?\}`)
)

// Resolve replaces the inline directives in text with their display values.
// Directives that match none of the patterns are left as literal text.
func Resolve(text string) string {
	text = chancePattern.ReplaceAllString(text, "${chance}")
	text = tagPattern.ReplaceAllString(text, "${value}")
	return notePattern.ReplaceAllString(text, "${note}")
}
