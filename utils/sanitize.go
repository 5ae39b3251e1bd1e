package utils

import "github.com/microcosm-cc/bluemonday"

var sanitizer = bluemonday.UGCPolicy()

// Sanitize cleans HTML content (admin-authored day texts, member notes)
// to prevent stored XSS.
func Sanitize(input string) string {
	return sanitizer.Sanitize(input)
}
