package search

import "time"

// EffectiveTimeout exposes the budget a run of g is bounded by.
func EffectiveTimeout(g *Generator) time.Duration { return g.timeout() }

// DeriveSeed exposes the per-stream seed mixer used by Sweep.
func DeriveSeed(parent int64, stream uint64) int64 { return deriveSeed(parent, stream) }
