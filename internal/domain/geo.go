package domain

import "math"

// Mean earth radius in meters, as used by the haversine formula.
const earthRadiusM = 6371000.0

// HaversineMeters returns the great-circle distance in meters between two
// WGS 84 coordinates.
func HaversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	return 2 * earthRadiusM * math.Asin(math.Sqrt(a))
}

// TrackDistanceMeters returns the along-track distance of an ordered
// point sequence, summed over every consecutive pair.
func TrackDistanceMeters(points []TrackPoint) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += HaversineMeters(points[i-1].Lat, points[i-1].Lon, points[i].Lat, points[i].Lon)
	}
	return total
}
