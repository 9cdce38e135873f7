// Package moving provides sliding-window smoothing filters for slowly varying
// sensor curves such as bean and environment temperature.
//
// [Mean] returns the arithmetic mean of the last K accepted samples.
// [Median] returns the median of the last K samples once its window is full
// and the mean of the partial window before that, so the warm-up output is
// always defined.
//
// Both filters skip missing (NaN) samples: the NaN is returned unchanged and
// the window is not touched.
package moving
