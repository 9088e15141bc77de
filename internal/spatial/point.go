package spatial

// Point represents a 2D point with latitude and longitude in degrees
// (WGS84).
type Point struct {
	Lat float64
	Lon float64
}

// PathLength calculates the total length of a path (sequence of points)
// in meters.
func PathLength(points []Point) float64 {
	if len(points) < 2 {
		return 0
	}

	var totalDist float64
	for i := 1; i < len(points); i++ {
		totalDist += HaversineDistance(points[i-1].Lat, points[i-1].Lon, points[i].Lat, points[i].Lon)
	}

	return totalDist
}
