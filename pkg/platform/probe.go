package platform

import (
	"context"
	"sync"

	"github.com/dmitrymomot/osdetect/pkg/osinfo"
)

// ProbeResult is what one source reported, classified.
type ProbeResult struct {
	Source   string
	Identity osinfo.Identity
	OS       osinfo.OperatingSystem
	Err      error
}

// Probe asks every source concurrently. A failing source does not stop the
// others; its error is recorded in its result. Results keep the order of
// sources.
func Probe(ctx context.Context, sources ...NamedSource) []ProbeResult {
	results := make([]ProbeResult, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := ProbeResult{Source: src.Name}
			id, err := src.Source.Identify(ctx)
			if err != nil {
				res.Err = err
			} else {
				res.Identity = id
				res.OS = osinfo.ClassifyIdentity(id)
			}
			results[i] = res
		}()
	}
	wg.Wait()

	return results
}
