// Package core provides the character grid the console draws into.
package core

// Color represents a foreground color for a screen cell.
// Uses ANSI color codes for terminal compatibility.
type Color uint8

// Predefined colors for tiles and labels.
const (
	ColorDefault Color = iota
	ColorRed
	ColorBlue
	ColorWhite
	ColorYellow
	ColorGray
)
