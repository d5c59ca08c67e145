// internal/pipeline/sort.go
package pipeline

import (
	"strings"
)

// SortKey enumerates the deterministic sort orders a caller may request.
// SortHybrid is the default composite-score ranking.
type SortKey int

const (
	SortHybrid SortKey = iota
	SortPriceAsc
	SortPriceDesc
	SortPopularity
	SortRating
)

var sortSynonyms = map[string]SortKey{
	"price asc":         SortPriceAsc,
	"price low":         SortPriceAsc,
	"price low to high": SortPriceAsc,
	"price desc":        SortPriceDesc,
	"price high":        SortPriceDesc,
	"price high to low": SortPriceDesc,
	"popularity":        SortPopularity,
	"popular":           SortPopularity,
	"rating":            SortRating,
	"ratings":           SortRating,
	"hybrid":            SortHybrid,
	"hybrid search":     SortHybrid,
	"hybrid score":      SortHybrid,
	"hybridscore":       SortHybrid,
}

var separatorReplacer = strings.NewReplacer("-", " ", "_", " ")

// ParseSortKey maps a free-form caller string to a SortKey. Matching is
// case-insensitive and treats '-' and '_' as spaces. Unrecognized values
// resolve to SortHybrid.
func ParseSortKey(raw string) SortKey {
	normalized := separatorReplacer.Replace(strings.ToLower(strings.TrimSpace(raw)))
	if key, ok := sortSynonyms[normalized]; ok {
		return key
	}
	return SortHybrid
}

// Stage returns the sort stage for the key. Popularity and rating sort
// descending; hybrid sorts descending by the derived composite score.
func (k SortKey) Stage() Sort {
	switch k {
	case SortPriceAsc:
		return Sort{{Key: "price", Value: 1}}
	case SortPriceDesc:
		return Sort{{Key: "price", Value: -1}}
	case SortPopularity:
		return Sort{{Key: "popularity", Value: -1}}
	case SortRating:
		return Sort{{Key: "rating.average", Value: -1}}
	default:
		return Sort{{Key: "hybrid_score", Value: -1}}
	}
}

// IsHybrid reports whether the key selects composite-score ranking.
func (k SortKey) IsHybrid() bool {
	return k == SortHybrid
}

// NeedsPopularity reports whether the pipeline must compute the order
// count for this key. The join is skipped for the other sorts.
func (k SortKey) NeedsPopularity() bool {
	return k == SortHybrid || k == SortPopularity
}

func (k SortKey) String() string {
	switch k {
	case SortPriceAsc:
		return "price_asc"
	case SortPriceDesc:
		return "price_desc"
	case SortPopularity:
		return "popularity"
	case SortRating:
		return "rating"
	default:
		return "hybrid"
	}
}
