package models

import "time"

type Earthquake struct {
	ID        string    // Feed ID (e.g., "us7000abcd")
	Place     string    // Human readable location, e.g. "10 km SW of Ridgecrest, CA"
	Magnitude float64   // may be 0 or negative
	Longitude float64
	Latitude  float64
	Depth     float64   // km, third GeoJSON coordinate
	Time      time.Time // when the event occurred
}

// Style parameterizes one circle marker.
type Style struct {
	Color       string  `json:"color"`
	FillColor   string  `json:"fillColor"`
	Radius      float64 `json:"radius"`
	FillOpacity float64 `json:"fillOpacity"`
}
