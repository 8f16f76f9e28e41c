package model

// Coordinate is a geographic point in WGS84 decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// RouteRequest contains the coordinates of a point-to-point routing query.
type RouteRequest struct {
	Origin      Coordinate
	Destination Coordinate
}

// PostcodeRouteRequest contains the postcodes of a postcode-to-postcode routing query.
type PostcodeRouteRequest struct {
	FirstPostcode  string
	SecondPostcode string
}
