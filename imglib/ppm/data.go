// Package ppm implements the binary P6 pixmap container: a short ASCII
// header followed by rows of RGB triples, top row first, no padding.
package ppm

const (
	Magic         = "P6"
	MaxColorValue = 255

	bytesPerPixel = 3
)
