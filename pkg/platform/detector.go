package platform

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dmitrymomot/osdetect/pkg/logger"
	"github.com/dmitrymomot/osdetect/pkg/osinfo"
)

// DefaultDetectTimeout bounds a single shared detection.
const DefaultDetectTimeout = 30 * time.Second

// Detector memoizes the classified identity of the current platform.
// Concurrent callers that find the cache stale share a single detection.
type Detector struct {
	src     osinfo.Source
	ttl     time.Duration
	timeout time.Duration
	log     *slog.Logger
	now     func() time.Time

	group singleflight.Group

	mu         sync.RWMutex
	current    osinfo.OperatingSystem
	detectedAt time.Time
	detected   bool
}

// DetectorOption configures a Detector.
type DetectorOption func(*Detector)

// WithTTL sets how long a detection is reused. Zero keeps it forever.
func WithTTL(ttl time.Duration) DetectorOption {
	return func(d *Detector) {
		if ttl >= 0 {
			d.ttl = ttl
		}
	}
}

// WithDetectTimeout bounds each detection. Zero disables the bound.
func WithDetectTimeout(timeout time.Duration) DetectorOption {
	return func(d *Detector) {
		if timeout >= 0 {
			d.timeout = timeout
		}
	}
}

func WithLogger(l *slog.Logger) DetectorOption {
	return func(d *Detector) {
		if l != nil {
			d.log = l
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) DetectorOption {
	return func(d *Detector) {
		if now != nil {
			d.now = now
		}
	}
}

func NewDetector(src osinfo.Source, opts ...DetectorOption) *Detector {
	d := &Detector{
		src:     src,
		timeout: DefaultDetectTimeout,
		log:     logger.Discard(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Current returns the cached classification while it is fresh and detects
// again otherwise.
//
// A detection is shared by every caller that arrives while it runs and is not
// tied to any one caller's context. A caller whose ctx ends stops waiting and
// gets ctx.Err(); the detection carries on for the others.
func (d *Detector) Current(ctx context.Context) (osinfo.OperatingSystem, error) {
	if current, ok := d.cached(); ok {
		return current, nil
	}
	return d.detect(ctx, false)
}

// Refresh detects again regardless of the cache.
func (d *Detector) Refresh(ctx context.Context) (osinfo.OperatingSystem, error) {
	return d.detect(ctx, true)
}

func (d *Detector) cached() (osinfo.OperatingSystem, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if !d.detected {
		return osinfo.OperatingSystem{}, false
	}
	if d.ttl > 0 && d.now().Sub(d.detectedAt) >= d.ttl {
		return osinfo.OperatingSystem{}, false
	}
	return d.current, true
}

func (d *Detector) detect(ctx context.Context, force bool) (osinfo.OperatingSystem, error) {
	ch := d.group.DoChan("current", func() (any, error) {
		// A detection may have finished between the cache check and here.
		if !force {
			if current, ok := d.cached(); ok {
				return current, nil
			}
		}

		flightCtx := context.WithoutCancel(ctx)
		if d.timeout > 0 {
			var cancel context.CancelFunc
			flightCtx, cancel = context.WithTimeout(flightCtx, d.timeout)
			defer cancel()
		}

		current, err := osinfo.Current(flightCtx, d.src)
		if err != nil {
			return nil, err
		}

		d.mu.Lock()
		d.current = current
		d.detectedAt = d.now()
		d.detected = true
		d.mu.Unlock()

		d.log.InfoContext(flightCtx, "platform detected", logger.OS(current))
		return current, nil
	})

	select {
	case <-ctx.Done():
		return osinfo.OperatingSystem{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			d.log.ErrorContext(ctx, "platform detection failed",
				logger.Error(res.Err),
				logger.Errors(causes(res.Err)...),
				slog.Bool("shared", res.Shared),
			)
			return osinfo.OperatingSystem{}, res.Err
		}
		return res.Val.(osinfo.OperatingSystem), nil
	}
}

// causes flattens joined errors, such as Chain's, into their leaves.
func causes(err error) []error {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return nil
	}
	var out []error
	for _, e := range joined.Unwrap() {
		if nested := causes(e); nested != nil {
			out = append(out, nested...)
			continue
		}
		out = append(out, e)
	}
	return out
}
