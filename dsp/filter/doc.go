// Package filter defines the streaming contract shared by the sensor-curve
// smoothing filters and a serial [Chain] to compose them.
//
// Every [Filter] consumes one sample per call and returns the filtered value.
// A NaN sample marks a missing reading: it is returned as NaN and leaves the
// filter state untouched, so gaps in acquisition never poison the window or
// recurrence history.
//
// Implementations live in sub-packages:
//
//   - dsp/filter/moving: sliding-window mean and median
//   - dsp/filter/iir: general transfer-function recurrence
//   - dsp/filter/biquad: cascade of second-order sections
package filter
