// Package strutil holds string helpers for header values.
package strutil

import "strings"

// LStripWS drops leading spaces and tabs.
func LStripWS(str string) string {
	return strings.TrimLeft(str, " \t")
}

// RStripWS drops trailing spaces and tabs.
func RStripWS(str string) string {
	return strings.TrimRight(str, " \t")
}

// CutParams returns parameters of the header value, i.e. everything after the first
// semicolon, with leading whitespace stripped.
func CutParams(header string) (params string) {
	_, params = CutHeader(header)
	return params
}

// CutHeader splits the header value into the value itself and its parameters. Whitespace
// around the semicolon is stripped.
func CutHeader(header string) (value, params string) {
	value, params, _ = strings.Cut(header, ";")
	return RStripWS(value), LStripWS(params)
}
