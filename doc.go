// Package panechart draws 2D charts with gonum.org/v1/plot.
//
// It does the parts of charting gonum leaves to the caller: picking axis
// ranges, tick positions and label formats from the data, mapping user
// values to pixels and arranging several chart panes on one image.
//
// Scales
//
// A Scale belongs to one axis. Its Kind selects the behavior:
//   - Linear, Log and Exponent     numeric axes
//   - Ordinal and Text             integer positions 1..n
//   - Date                         XDate values, days since 1899-12-30
//   - DateAsOrdinal                positions labeled with dates
//   - LinearAsOrdinal              positions labeled with numbers
//
// PickScale selects min, max, major and minor step, magnitude and label
// format from a data range. Every value can be pinned instead by its
// setter; ResetAuto makes everything automatic again. Transform and
// ReverseTransform map between user values and pixels once
// SetPixelRange is known.
//
// Panes
//
// A Pane combines an x, a y and a second y axis with geoms from package
// geom. Panes are arranged by a layout.MasterPane and drawn by
// DrawMaster, WritePNG or WriteSVG.
//
// Pixel coordinates follow the screen convention: x grows to the right
// and y grows downward. CanvasPoint converts them to gonum canvas points.
package panechart
