// Package metrics holds shared instrumentation defaults.
package metrics

// DefaultBuckets is the latency histogram layout (in seconds) shared by the
// API server's request instruments.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals
