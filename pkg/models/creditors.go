package models

import "strings"

// FilterCreditors returns the creditors whose name or phone contains
// the query, case insensitively. An empty query returns the input
// unchanged.
func FilterCreditors(creditors []Creditor, query string) []Creditor {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return creditors
	}
	var matched []Creditor
	for _, c := range creditors {
		if strings.Contains(strings.ToLower(c.Name), query) ||
			strings.Contains(strings.ToLower(c.Phone), query) {
			matched = append(matched, c)
		}
	}
	return matched
}
