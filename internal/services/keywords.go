package services

import (
	"fmt"
	"regexp"
	"strings"

	"savings-tracker/internal/models"
)

var keywordPattern = regexp.MustCompile(`[a-z]+`)

// SummarizeExpenses flattens entries into one line each, joined by spaces
func SummarizeExpenses(entries []models.LedgerEntry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("Price: %s. Category: %s. Description: %s.",
			e.Amount.String(), e.Category, e.Description))
	}
	return strings.Join(lines, " ")
}

// ExtractKeywords lower-cases text and returns its maximal runs of ASCII
// letters, each word once, in order of first occurrence.
func ExtractKeywords(text string) []string {
	words := keywordPattern.FindAllString(strings.ToLower(text), -1)

	seen := make(map[string]struct{}, len(words))
	keywords := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		keywords = append(keywords, w)
	}
	return keywords
}

// JoinProductContext joins matched product texts with newlines, or returns
// NoMatchingProduct when nothing matched.
func JoinProductContext(products []models.ReferenceProduct) string {
	if len(products) == 0 {
		return NoMatchingProduct
	}

	texts := make([]string, 0, len(products))
	for _, p := range products {
		texts = append(texts, p.Content)
	}
	return strings.Join(texts, "\n")
}
