// Package directory holds the pure presentation rules of the business directory:
// search filtering, the industry facet and video embedding.
package directory

import (
	"slices"
	"strings"

	"github.com/Abros3006/business-tracker/internal/domain/entity"
)

// MatchesSearch reports whether term occurs, case-insensitively, in the business
// name, description or industry. An empty term matches everything.
func MatchesSearch(b *entity.Business, term string) bool {
	if term == "" {
		return true
	}

	needle := strings.ToLower(term)

	return strings.Contains(strings.ToLower(b.Name), needle) ||
		strings.Contains(strings.ToLower(b.Description), needle) ||
		strings.Contains(strings.ToLower(b.Industry), needle)
}

// MatchesIndustry reports whether industry is empty or equal to the business industry.
func MatchesIndustry(b *entity.Business, industry string) bool {
	return industry == "" || b.Industry == industry
}

// Filter keeps the businesses matching both the search term and the industry,
// preserving input order. Filtering a filtered list again with the same
// arguments returns it unchanged.
func Filter(businesses []*entity.Business, term, industry string) []*entity.Business {
	filtered := make([]*entity.Business, 0, len(businesses))
	for _, b := range businesses {
		if b == nil {
			continue
		}
		if MatchesSearch(b, term) && MatchesIndustry(b, industry) {
			filtered = append(filtered, b)
		}
	}

	return filtered
}

// Industries returns the distinct non-empty industries, sorted.
func Industries(businesses []*entity.Business) []string {
	seen := make(map[string]struct{}, len(businesses))
	industries := make([]string, 0, len(businesses))
	for _, b := range businesses {
		if b == nil || b.Industry == "" {
			continue
		}
		if _, ok := seen[b.Industry]; ok {
			continue
		}
		seen[b.Industry] = struct{}{}
		industries = append(industries, b.Industry)
	}
	slices.Sort(industries)

	return industries
}

// CountFeatured returns how many businesses carry the featured flag.
func CountFeatured(businesses []*entity.Business) int {
	count := 0
	for _, b := range businesses {
		if b != nil && b.Featured {
			count++
		}
	}

	return count
}
