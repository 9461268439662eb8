// Package options provides the functional options pattern used to
// configure the sweep engine's façade functions: WithEpsilon sets the
// floating-point tolerance the Fast primitive provider uses, and
// WithAccurate selects between it and the exact rational provider.
package options
