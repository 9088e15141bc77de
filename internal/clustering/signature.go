package clustering

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/strideline/routes-backend-go/internal/models"
	"github.com/strideline/routes-backend-go/internal/spatial"
)

// Geohash precisions used for fingerprinting. Start/end cells are finer
// (~0.6 km) than path cells (~4 km at precision 5): the fixed start and
// finish tolerate less drift than the route body.
const (
	endpointPrecision = 6
	pathCellPrecision = 5
)

// GenerateRouteSignature derives a route signature from a raw point
// sequence. The path is simplified first so that two recordings of the
// same physical route, differing only in sampling noise, produce
// overlapping cell sets. Returns nil when fewer than 2 points remain
// after simplification.
func GenerateRouteSignature(points []spatial.Point) *models.RouteSignature {
	simplified := spatial.SimplifyPath(points, spatial.SignatureTolerance)
	if len(simplified) < 2 {
		return nil
	}

	first := simplified[0]
	last := simplified[len(simplified)-1]
	startGeohash := spatial.EncodeGeohash(first.Lat, first.Lon, endpointPrecision)
	endGeohash := spatial.EncodeGeohash(last.Lat, last.Lon, endpointPrecision)

	seen := make(map[string]struct{}, len(simplified))
	cells := make([]string, 0, len(simplified))
	for _, p := range simplified {
		cell := spatial.EncodeGeohash(p.Lat, p.Lon, pathCellPrecision)
		if _, ok := seen[cell]; ok {
			continue
		}
		seen[cell] = struct{}{}
		cells = append(cells, cell)
	}
	sort.Strings(cells)

	return &models.RouteSignature{
		StartGeohash: startGeohash,
		EndGeohash:   endGeohash,
		PathCells:    cells,
		RouteKey:     routeKey(startGeohash, endGeohash, cells),
	}
}

// routeKey computes a stable content hash over the signature fields.
// It identifies exact duplicates; fuzzy matching goes through
// CalculateRouteSimilarity instead.
func routeKey(startGeohash, endGeohash string, cells []string) string {
	sum := sha256.Sum256([]byte(startGeohash + "|" + endGeohash + "|" + strings.Join(cells, ",")))
	return hex.EncodeToString(sum[:])
}
