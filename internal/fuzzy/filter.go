// Package fuzzy implements the token filter used by the profile selector.
package fuzzy

import "strings"

// Choice is a selectable entry: the text shown to the user and the value
// committed when it is picked.
type Choice struct {
	Title string
	Value string
}

// Tokens lower-cases query and splits it on runs of whitespace.
func Tokens(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// Match reports whether title contains every whitespace-separated token of
// query, ignoring case. Tokens may match in any order and may overlap. An
// empty query matches everything.
func Match(query, title string) bool {
	return matchTokens(Tokens(query), title)
}

// Filter returns the choices whose title matches query, keeping their
// relative order.
func Filter(query string, choices []Choice) []Choice {
	tokens := Tokens(query)

	filtered := make([]Choice, 0, len(choices))
	for _, choice := range choices {
		if matchTokens(tokens, choice.Title) {
			filtered = append(filtered, choice)
		}
	}

	return filtered
}

func matchTokens(tokens []string, title string) bool {
	lower := strings.ToLower(title)
	for _, token := range tokens {
		if !strings.Contains(lower, token) {
			return false
		}
	}
	return true
}
