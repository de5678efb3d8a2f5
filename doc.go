// Package stringart implements the core data model for rendering a raster
// image as string art: straight line segments ("strings") stretched between
// pins, each tinted from a small palette of colors and composed over a
// background.
//
// # Overview
//
// The package provides the primitives shared by every other piece of the
// generator: integer and float color types, pixel points and geometric
// vectors, the line iterator used for sub-pixel rasterization, the signed
// reference-image accumulator used for delta-scoring, and the histogram-based
// automatic palette selector. The optimizer (package optimize), pin
// generators (package pins), and the driver (package driver) build on top of
// these.
//
// # Coordinate system
//
//   - Origin (0,0) at top-left.
//   - X increases right, Y increases down.
//   - Point coordinates are non-negative pixel indices; Vector coordinates
//     are floats used for sub-pixel line traversal.
package stringart
