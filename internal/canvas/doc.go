// Package canvas provides pinentry.Surface implementations.
//
// Braille rasterizes draw calls onto a grid of Unicode braille characters so
// the widget can be shown in a terminal: each character cell holds a 2x4 block
// of dots, and one widget unit maps to one dot. Image draws onto an RGBA
// bitmap with fogleman/gg and can be written out as PNG.
//
// Both surfaces accumulate drawing; create a new one (or call Clear) per frame.
package canvas
