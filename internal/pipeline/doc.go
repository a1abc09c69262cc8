// Package pipeline runs the region engine over every clonotype key and chain
// and assembles output rows in input order.
//
// The only contract to implement is Extractor (Extract + CDRBounds).
// This keeps the pipeline swappable and testable.
package pipeline
