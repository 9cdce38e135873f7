// Package curve summarizes filtered sensor curves for logging and export.
//
// Missing readings (NaN) are counted and excluded from every statistic.
package curve
