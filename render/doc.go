// Package render draws a map and its best path.
//
// DOT produces a Graphviz description with pinned vertex positions: the
// start vertex is a double circle, roads on the best path (core.Edge.Used)
// are red and the rest cyan. Render lays the description out with neato
// and writes it as SVG, PNG, JPG or plain DOT.
package render
