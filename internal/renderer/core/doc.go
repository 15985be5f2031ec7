// Package core provides the screen primitives shared by the renderer and
// its backends: colors, styles, cells, rectangles and display width.
// It has no dependency on any terminal library.
package core
