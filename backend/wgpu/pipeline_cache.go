package wgpu

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/uipaint"
)

// pipelineKey identifies one compiled pipeline variant. The target
// format decides where the pipeline can render; the encoding decides
// which fragment entry point does the color conversion.
type pipelineKey struct {
	Format   gputypes.TextureFormat
	Encoding uipaint.TargetEncoding
}

// createFunc builds a pipeline on cache miss. Injectable for tests.
type createFunc func(pipelineKey) (hal.RenderPipeline, error)

// pipelineCache caches compiled pipelines per key.
//
// Pipeline creation involves shader compilation and validation, so a
// surface format change mid-session must not recompile what already
// exists. Safe for concurrent use via RWMutex with double-check
// locking.
type pipelineCache struct {
	mu      sync.RWMutex
	entries map[pipelineKey]hal.RenderPipeline
	create  createFunc
	hits    atomic.Uint64
	misses  atomic.Uint64
}

func newPipelineCache(create createFunc) *pipelineCache {
	return &pipelineCache{
		entries: make(map[pipelineKey]hal.RenderPipeline),
		create:  create,
	}
}

// get returns the cached pipeline for key, building it on first use.
func (c *pipelineCache) get(key pipelineKey) (hal.RenderPipeline, error) {
	// Fast path: read lock.
	c.mu.RLock()
	if p, ok := c.entries[key]; ok {
		c.mu.RUnlock()
		c.hits.Add(1)
		return p, nil
	}
	c.mu.RUnlock()

	// Slow path: write lock with double-check.
	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.entries[key]; ok {
		c.hits.Add(1)
		return p, nil
	}

	p, err := c.create(key)
	if err != nil {
		return nil, err
	}
	c.entries[key] = p
	c.misses.Add(1)
	return p, nil
}

// stats reports cache hits and misses.
func (c *pipelineCache) stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

// drain empties the cache and returns the pipelines for destruction.
func (c *pipelineCache) drain() []hal.RenderPipeline {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]hal.RenderPipeline, 0, len(c.entries))
	for _, p := range c.entries {
		out = append(out, p)
	}
	clear(c.entries)
	return out
}
