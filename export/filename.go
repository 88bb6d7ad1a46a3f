// Package export writes stored conformer geometries back out as trajectory
// files and archives.
package export

import "strings"

// TrajectoryFilename derives the trajectory output name from a molecule's
// display name: spaces are removed, hyphens become underscores.
func TrajectoryFilename(name string) string {
	sanitized := strings.ReplaceAll(name, " ", "")
	sanitized = strings.ReplaceAll(sanitized, "-", "_")
	return sanitized + ".xyz"
}

// GroupFilename derives the output name for a functional-group trajectory.
func GroupFilename(tag string) string {
	return tag + ".xyz"
}
