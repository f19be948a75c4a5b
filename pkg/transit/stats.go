package transit

import "math"

// SpreadOfRidership returns the population standard deviation of usage
// across all stations, or across the stations carrying at least one of the
// given line labels when the filter is non-empty. It returns 0 for an
// empty selection.
func (g *Graph) SpreadOfRidership(lineFilter []string) float64 {
	stations := g.Stations(lineFilter)
	if len(stations) == 0 {
		return 0
	}

	var sum float64
	for _, s := range stations {
		sum += s.usage
	}
	mean := sum / float64(len(stations))

	var sq float64
	for _, s := range stations {
		d := s.usage - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(stations)))
}
