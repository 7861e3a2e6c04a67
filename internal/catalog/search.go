package catalog

import (
	"strings"

	"labcatalog/internal/models"
)

// Match reasons in priority order; the first matching field wins.
const (
	MatchName        = "name"
	MatchDescription = "description"
	MatchCategory    = "category"
	MatchType        = "type"
	MatchFeature     = "feature"
	MatchEquipment   = "equipment"
)

type SearchMatch struct {
	Lab     models.Lab
	Matched string
}

// SearchLabs performs a case-insensitive substring search over name,
// description, category, type, feature tags and equipment model names.
// An empty or whitespace-only query yields no results.
func (c *Catalog) SearchLabs(q string) []SearchMatch {
	term := strings.ToLower(strings.TrimSpace(q))
	if term == "" {
		return nil
	}

	var out []SearchMatch
	for _, lab := range c.labs {
		if matched, ok := matchLab(&lab, term); ok {
			out = append(out, SearchMatch{Lab: lab, Matched: matched})
		}
	}
	return out
}

func matchLab(lab *models.Lab, term string) (string, bool) {
	if strings.Contains(strings.ToLower(lab.Name), term) {
		return MatchName, true
	}
	if strings.Contains(strings.ToLower(lab.Description), term) {
		return MatchDescription, true
	}
	if strings.Contains(strings.ToLower(lab.Category), term) {
		return MatchCategory, true
	}
	if strings.Contains(strings.ToLower(lab.Type), term) {
		return MatchType, true
	}
	for _, f := range lab.Features {
		if strings.Contains(strings.ToLower(f), term) {
			return MatchFeature, true
		}
	}
	for _, items := range lab.Equipment {
		for _, item := range items {
			if strings.Contains(strings.ToLower(item.Model), term) {
				return MatchEquipment, true
			}
		}
	}
	return "", false
}
