// Package renderer draws the calculator screen.
//
// The screen is laid out like a phone calculator: the display sits at the
// bottom of the free space, right aligned, above a four column button
// grid:
//
//	              12 +
//	                 5
//	┌─────┬─────┬─────┬─────┐
//	│  7  │  8  │  9  │  ÷  │
//	│  4  │  5  │  6  │  ×  │
//	│  1  │  2  │  3  │  −  │
//	│  0  │  .  │  =  │  +  │
//	│    AC     │     │  C  │
//	└─────┴─────┴─────┴─────┘
//
// Layout computes button rectangles for a screen size and maps mouse
// positions back to labels. Renderer owns a backend.Backend and redraws
// the whole screen from a View on every Draw.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, renderer.DefaultTheme())
//	r.Draw(renderer.View{Display: eng.Display(), Expression: eng.Expression()})
package renderer
