// Package gridcover measures how much of a 2D grid lies within reach of
// its positive cells: Manhattan neighborhoods, set unions and toroidal
// folding over rectangular numeric fields.
//
// 🚀 What is gridcover?
//
//	A small, deterministic coverage library that brings together:
//		• Grids: immutable rectangular fields of ints, uints or floats
//		• Coordinates: value-type cells with L1 distance, bounds and torus wrap
//		• Neighborhoods: L1 balls built from one quadrant and four reflections
//		• Coverage: union counting with boundary pruning or toroidal wraparound
//		• Matrix bridge: adapters to and from gonum dense matrices
//
// ✨ Why choose gridcover?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – one answer regardless of worker count or merge order
//   - Generic – any numeric element type through a single type parameter
//   - Tunable – functional options for wraparound, workers and cancellation
//
// Under the hood, everything is organized under two subpackages:
//
//	grid/      – Grid, Coord, CoordSet types, constructors & gonum adapters
//	manhattan/ – Neighborhood generation, Count/Covered union pipeline
//
// Quick ASCII example (radius 1 around a single positive cell):
//
//	    . x .
//	    x ■ x
//	    . x .
//
//	five cells are covered: the center and its four L1 neighbors.
//
// Dive into the grid and manhattan package docs for the full option set,
// error taxonomy, and complexity notes.
//
//	go get github.com/katalvlaran/gridcover
package gridcover
