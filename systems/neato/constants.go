// Package neato contains Neato cleaning map camera integration.
package neato

import "time"

const (
	// Domain is the integration namespace used in device identifiers.
	Domain = "neato"
	// ScanIntervalMinutes defines how often robots and maps are polled.
	ScanIntervalMinutes = 1
	// TraitMaps marks robots that report cleaning maps.
	TraitMaps = "maps"
	// DefaultEndpoint is the vendor cloud API location.
	DefaultEndpoint = "https://beehive.neatocloud.com"

	// Logger system representation.
	logSystem = "neato"
	// Suffix appended to robot name for the camera name.
	cameraNameSuffix = "Cleaning Map"
)

// ScanInterval returns device scan interval.
func ScanInterval() time.Duration {
	return ScanIntervalMinutes * time.Minute
}
