// Package pipeline wires configured filter chains to named sensor channels
// (bt, et, ror, ...) and feeds them samples in arrival order.
//
// Each channel owns an independent chain. A Pipeline is driven by a single
// acquisition loop and is not safe for concurrent use.
package pipeline
