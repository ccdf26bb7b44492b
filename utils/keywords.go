// utils/keywords.go
package utils

import "strings"

// BuildSearchKeywords tokenizes the given texts into the searchKeywords set
// stored on a business document. Every producer of business documents (the
// live write path and the seeder) must go through this one function so the
// search index never skews between them.
//
// Tokens are lowercased, non-alphanumeric characters become separators, and
// tokens shorter than 2 characters are dropped. The result is deduplicated.
func BuildSearchKeywords(texts ...string) []string {
	seen := make(map[string]bool)
	var keywords []string

	for _, text := range texts {
		if text == "" {
			continue
		}
		normalized := strings.Map(func(r rune) rune {
			switch {
			case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
				return r
			case r >= 'A' && r <= 'Z':
				return r + ('a' - 'A')
			default:
				return ' '
			}
		}, text)

		for _, token := range strings.Fields(normalized) {
			if len(token) < 2 || seen[token] {
				continue
			}
			seen[token] = true
			keywords = append(keywords, token)
		}
	}

	return keywords
}
