// Package buffer provides the fixed-capacity sample storage used by the
// sliding-window filters.
//
// A [Ring] holds the most recent accepted samples of a stream. It grows from
// empty to its capacity and then slides, evicting the oldest value on every
// push. Capacity is fixed at construction, so steady-state processing never
// allocates.
package buffer
