// Package pipeline wraps the depline core with caching and logging.
//
// The core in pkg/deps is a pure text-to-text transform. Everything an
// entry point wants around it - result caching keyed by input hash,
// structured progress logging - lives here, so the CLI, the HTTP API, and
// the terminal editor all behave identically.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	defer runner.Close()
//	result, err := runner.Process(ctx, rawText, pipeline.Options{})
//	if err != nil {
//	    // err carries a structured code from pkg/errors
//	}
//	fmt.Println(result.ExpandedOutput)
package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mlutz/depline/pkg/cache"
	"github.com/mlutz/depline/pkg/deps"
)

// DefaultTTL is how long cached results are kept. Expansion is cheap for
// typical documents, so the cache mostly saves work for large inputs
// submitted repeatedly (e.g. re-uploads of the same file).
const DefaultTTL = 24 * time.Hour

// keyPrefix namespaces pipeline results in the shared cache.
const keyPrefix = "process"

// Options controls a single pipeline invocation.
type Options struct {
	// NoCache bypasses the cache for this invocation.
	NoCache bool

	// TTL overrides DefaultTTL when positive.
	TTL time.Duration
}

// Runner executes the pipeline with caching.
//
// The Runner is stateless except for the cache and logger - it stores no
// pipeline results itself, so multiple goroutines can share one Runner.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and logger.
// If c is nil, a NullCache is used (caching disabled).
// If logger is nil, log.Default() is used.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Process runs the extract → build → expand → format pipeline on raw,
// consulting the cache first. Errors from the core are returned as-is;
// cache failures are logged and degrade to a plain uncached run.
func (r *Runner) Process(ctx context.Context, raw string, opts Options) (*deps.Result, error) {
	key := cache.Key(keyPrefix, []byte(raw))

	if !opts.NoCache {
		if data, hit, err := r.Cache.Get(ctx, key); err != nil {
			r.Logger.Warn("cache read failed", "err", err)
		} else if hit {
			var res deps.Result
			if err := json.Unmarshal(data, &res); err == nil {
				r.Logger.Debug("cache hit", "key", key)
				return &res, nil
			}
			// Corrupt entry: drop it and recompute.
			_ = r.Cache.Delete(ctx, key)
		}
	}

	start := time.Now()
	res, err := deps.Process(raw)
	if err != nil {
		return nil, err
	}
	r.Logger.Info("expanded dependencies",
		"bytes", len(raw),
		"duration", time.Since(start).Round(time.Microsecond))

	if !opts.NoCache {
		ttl := opts.TTL
		if ttl <= 0 {
			ttl = DefaultTTL
		}
		if data, err := json.Marshal(res); err == nil {
			if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
				r.Logger.Warn("cache write failed", "err", err)
			}
		}
	}

	return res, nil
}

// Close releases the underlying cache.
func (r *Runner) Close() error {
	return r.Cache.Close()
}
