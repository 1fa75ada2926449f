package core

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Filter returns the visible offers matching searchTerm and location, in
// input order. searchTerm must appear in the title, candidate name, category
// or description; an empty location matches everything. The input is never
// modified and the result is never nil.
func Filter(offers []JobOffer, searchTerm, location string) []JobOffer {
	// plain lowercasing, so "ss" does not match "ß"
	lower := cases.Lower(language.Und)
	term := lower.String(searchTerm)
	loc := lower.String(location)

	out := make([]JobOffer, 0, len(offers))
	for _, o := range offers {
		if !o.Visible {
			continue
		}
		if !matchesTerm(lower, o, term) {
			continue
		}
		if loc != "" && !strings.Contains(lower.String(o.Location), loc) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func matchesTerm(lower cases.Caser, o JobOffer, term string) bool {
	if containsLower(lower, o.Title, term) ||
		containsLower(lower, o.CandidateName, term) ||
		containsLower(lower, o.Category, term) {
		return true
	}
	// missing description never matches
	return o.Description != "" && containsLower(lower, o.Description, term)
}

func containsLower(lower cases.Caser, text, term string) bool {
	return strings.Contains(lower.String(text), term)
}
