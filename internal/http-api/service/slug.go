package service

import "regexp"

// URL-safe charset: latin letters, digits, hyphens and underscores.
var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

func validSlug(slug string) bool {
	return slug != "" && len(slug) <= 50 && slugPattern.MatchString(slug)
}
