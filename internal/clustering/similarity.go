package clustering

import (
	"github.com/strideline/routes-backend-go/internal/models"
)

// prefixLen is the number of leading geohash characters that must agree
// before path cells are compared at all. Four characters is roughly a
// 20x20 km cell: routes that do not start and end in the same broad
// area can never match.
const prefixLen = 4

// CalculateRouteSimilarity scores how alike two route signatures are,
// in [0, 1]. The function is pure and symmetric.
func CalculateRouteSimilarity(a, b *models.RouteSignature) float64 {
	if !samePrefix(a.StartGeohash, b.StartGeohash) {
		return 0
	}
	if !samePrefix(a.EndGeohash, b.EndGeohash) {
		return 0
	}

	return jaccard(a.PathCells, b.PathCells)
}

func samePrefix(a, b string) bool {
	if len(a) < prefixLen || len(b) < prefixLen {
		return a == b
	}
	return a[:prefixLen] == b[:prefixLen]
}

// jaccard computes |intersection| / |union| of two cell sets. An empty
// union counts as identical; that only happens for degenerate
// signatures, which the >= 10 point precondition upstream rules out.
func jaccard(a, b []string) float64 {
	set := make(map[string]struct{}, len(a))
	for _, cell := range a {
		set[cell] = struct{}{}
	}

	intersection := 0
	union := len(set)
	seen := make(map[string]struct{}, len(b))
	for _, cell := range b {
		if _, dup := seen[cell]; dup {
			continue
		}
		seen[cell] = struct{}{}
		if _, ok := set[cell]; ok {
			intersection++
		} else {
			union++
		}
	}

	if union == 0 {
		return 1
	}
	return float64(intersection) / float64(union)
}
