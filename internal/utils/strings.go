package utils

import "strings"

// LikeEscapeChar is the escape character of patterns built by EscapeLike.
// Queries using such patterns must declare it with ESCAPE.
const LikeEscapeChar = "!"

var likeEscaper = strings.NewReplacer(LikeEscapeChar, LikeEscapeChar+LikeEscapeChar, "%", LikeEscapeChar+"%", "_", LikeEscapeChar+"_")

// EscapeLike escapes LIKE wildcards in s with LikeEscapeChar.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
