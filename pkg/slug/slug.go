// Package slug generates URL safe ASCII slugs from product and category names.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9-]+`)
	multiHyphen     = regexp.MustCompile(`-{2,}`)
)

// From converts an arbitrary Unicode string into a lowercase ASCII slug.
// Accented characters are decomposed and their combining marks stripped, so
// "Café Crème" becomes "cafe-creme".
func From(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isCombiningMark))
	result, _, _ := transform.String(t, s)

	result = strings.ToLower(result)

	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '-'
	}, result)

	result = nonAlphanumeric.ReplaceAllString(result, "-")
	result = multiHyphen.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	return result
}

func isCombiningMark(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
