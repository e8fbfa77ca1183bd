package functions

// Distance returns "geo::distance(a, b)" — the distance in meters between
// two geometry points.
func Distance(a, b any) Function { return call("geo::distance", a, b) }

// Area returns "geo::area(geometry)".
func Area(geometry any) Function { return call("geo::area", geometry) }

// Centroid returns "geo::centroid(geometry)".
func Centroid(geometry any) Function { return call("geo::centroid", geometry) }
