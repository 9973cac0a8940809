// Package metadata computes the metadata values attached to a detected
// configuration: tool versions, interpreter version windows, and values read
// from the repository's own manifest files.
//
// Each [Producer] queries one independent source. Producers are best-effort:
// one that yields no value, or whose source fails, is simply omitted from
// the collected result.
package metadata

import "context"

// Producer computes a single metadata value.
type Producer struct {
	// Name is the metadata key the value is stored under.
	Name string
	// Get returns the value, or nil when the source has nothing to offer.
	Get func(ctx context.Context) (any, error)
}

// Static returns a producer that always yields the given value.
func Static(name string, value any) Producer {
	return Producer{
		Name: name,
		Get:  func(context.Context) (any, error) { return value, nil },
	}
}

// Collect runs every producer and returns the present values keyed by
// producer name. Absent values and failed producers are omitted; failures
// are reported through logf (which may be nil) rather than propagated, so a
// broken source never prevents a best-effort result.
func Collect(ctx context.Context, producers []Producer, logf func(string, ...any)) map[string]any {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	out := make(map[string]any)
	for _, p := range producers {
		value, err := p.Get(ctx)
		if err != nil {
			logf("metadata %s: %v", p.Name, err)
			continue
		}
		if value == nil {
			continue
		}
		out[p.Name] = value
	}
	return out
}
