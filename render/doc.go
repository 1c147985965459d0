// Package render turns a solved Path (and the Puzzle it solves) into
// human-facing output: a start-vertex-plus-letters text format, and an SVG
// rasterisation of the board plus its constraints and solution.
//
// The SVG side builds a canvas once with github.com/ajstarks/svgo, then
// populates it with a sequence of draw* helpers, one per puzzle feature.
package render
