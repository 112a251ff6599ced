package engine

// candidate pairs a backend kind with its probe, in selection priority
// order. A probe is a side-effect-free capability check: it may fail, it
// may run redundantly, it never mutates program state.
type candidate struct {
	kind  Kind
	probe func() (Backend, error)
}

// candidates are tried first to last. Portable is last and its probe never
// fails, so selection always terminates with a backend.
var candidates = []candidate{
	{KindNative, probeNative},
	{KindWords, probeWords},
	{KindPortable, probePortable},
}

// Availability is one probe outcome, reported by /status and
// `primectl backends`.
type Availability struct {
	Kind      Kind
	Available bool
	// Reason explains an unavailable or skipped backend; empty otherwise.
	Reason string
}

// Probe checks every candidate without selecting one.
func Probe() []Availability {
	out := make([]Availability, 0, len(candidates))
	for _, c := range candidates {
		_, err := c.probe()
		av := Availability{Kind: c.kind, Available: err == nil}
		if err != nil {
			av.Reason = err.Error()
		}
		out = append(out, av)
	}
	return out
}
