package options

// WithAccurate returns a [GeometryOptionsFunc] that selects the coordinate
// backend the sweep engine uses internally.
//
// Parameters:
//   - accurate: When true, the engine promotes coordinates to exact
//     rationals before evaluating any predicate. When false, the engine
//     runs on epsilon-tolerant float64 arithmetic only.
//
// Returns:
//   - A [GeometryOptionsFunc] that sets the Accurate field.
func WithAccurate(accurate bool) GeometryOptionsFunc {
	return func(opts *GeometryOptions) {
		opts.Accurate = accurate
	}
}
