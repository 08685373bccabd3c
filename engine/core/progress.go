package core

// ProgressFunc receives coarse-grained conversion progress as a percentage
// in [0, 100]. It is advisory only; callers must not rely on any particular
// number of invocations.
type ProgressFunc func(pct int)

// ProgressTracker forwards stage-boundary progress to a callback while
// guaranteeing the reported percentage never decreases. One tracker is
// created per conversion request; it holds no shared state.
type ProgressTracker struct {
	fn   ProgressFunc
	last int
}

func NewProgressTracker(fn ProgressFunc) *ProgressTracker {
	return &ProgressTracker{fn: fn, last: -1}
}

// Report clamps pct into [0, 100] and forwards it if it advances past the
// last reported value. Regressions are dropped.
func (pt *ProgressTracker) Report(pct int) {
	if pt == nil || pt.fn == nil {
		return
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	if pct <= pt.last {
		return
	}
	pt.last = pct
	pt.fn(pct)
}
