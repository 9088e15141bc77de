package spatial

import (
	"math"
)

// Default simplification tolerances in degrees. The signature tolerance
// is deliberately coarser: repeated runs of the same physical route
// should collapse to near-identical simplified shapes despite GPS noise.
const (
	DefaultTolerance   = 0.0001
	SignatureTolerance = 0.0005
)

// SimplifyPath simplifies a path using the Ramer-Douglas-Peucker
// algorithm. tolerance is the maximum perpendicular offset, in degrees,
// a removed point may have from the simplified path. The first and last
// input points are always kept; input of length <= 2 is returned
// unchanged.
func SimplifyPath(points []Point, tolerance float64) []Point {
	if len(points) <= 2 {
		return points
	}

	// Find the point with maximum distance from the line segment
	// connecting the endpoints.
	maxDist := 0.0
	maxIndex := 0
	for i := 1; i < len(points)-1; i++ {
		dist := perpendicularDistance(points[i], points[0], points[len(points)-1])
		if dist > maxDist {
			maxDist = dist
			maxIndex = i
		}
	}

	if maxDist > tolerance {
		left := SimplifyPath(points[:maxIndex+1], tolerance)
		right := SimplifyPath(points[maxIndex:], tolerance)

		// Combine results, dropping the duplicated junction point.
		result := make([]Point, 0, len(left)+len(right)-1)
		result = append(result, left...)
		result = append(result, right[1:]...)
		return result
	}

	// Everything between the endpoints is within tolerance.
	return []Point{points[0], points[len(points)-1]}
}

// perpendicularDistance calculates the perpendicular distance, in
// degrees, from a point to the line through lineStart and lineEnd.
// Lat/lon are treated as planar coordinates, which is accurate enough
// at running-route scale.
func perpendicularDistance(point, lineStart, lineEnd Point) float64 {
	x0, y0 := point.Lat, point.Lon
	x1, y1 := lineStart.Lat, lineStart.Lon
	x2, y2 := lineEnd.Lat, lineEnd.Lon

	num := math.Abs((y2-y1)*x0 - (x2-x1)*y0 + x2*y1 - y2*x1)
	den := math.Sqrt((y2-y1)*(y2-y1) + (x2-x1)*(x2-x1))

	if den == 0 {
		// Degenerate segment: fall back to point distance.
		return math.Hypot(x0-x1, y0-y1)
	}

	return num / den
}
