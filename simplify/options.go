package simplify

// DefaultFilterThreshold is the minimum specimen support a node must carry
// to survive NeglectNodes when no explicit threshold is supplied.
const DefaultFilterThreshold = 4

// Options configures the simplifier passes.
type Options struct {
	// FilterThreshold is the specimen-count cutoff NeglectNodes and
	// Converge use: a node with |specimens| <= FilterThreshold is pruned.
	// A threshold of 0 is a valid, deliberate choice: NeglectNodes still
	// removes zero-specimen residuals, but skips neighbor bookkeeping,
	// which is the mode Converge uses to garbage-collect after
	// SplitGroups (see converge.go).
	FilterThreshold int
}

// DefaultOptions returns Options with FilterThreshold = DefaultFilterThreshold.
func DefaultOptions() Options {
	return Options{FilterThreshold: DefaultFilterThreshold}
}

// Validate reports ErrBadThreshold if FilterThreshold < 0.
func (o Options) Validate() error {
	if o.FilterThreshold < 0 {
		return ErrBadThreshold
	}
	return nil
}
