// Package response measures the behaviour of streaming filters by probing
// them with synthetic inputs.
//
// It answers tuning questions for a smoothing chain: how much delay and
// attenuation a configuration introduces (MagnitudeSpectrum, DCGain) and how
// many samples pass before the output follows a step (SettlingSamples), which
// bounds how long an alert evaluator should ignore a freshly reset curve.
//
// Probing resets the filter before and after the measurement.
package response
