package common

import "fmt"

// schema for geographic coordinate (decimal degrees)
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (l Location) String() string {
	return fmt.Sprintf("(%0.6f, %0.6f)", l.Latitude, l.Longitude)
}

// schema for requested trip
type Trip struct {
	Origin      Location `json:"origin"`
	Destination Location `json:"destination"`
	SpeedKmh    float64  `json:"speed_kmh"`
}
