package interrotron

import "math/rand"

// runConfig collects the per-call knobs a Program.Run/Interpreter.Run accepts. It is
// built from a chain of Option values closing over a mutable config,
// rather than as an exported struct callers fill in field by field.
type runConfig struct {
	bindings map[string]Value
	maxOps   int
	seed     int64
	hasSeed  bool
}

func newRunConfig() *runConfig {
	return &runConfig{maxOps: Unbounded}
}

// Option configures a single Run call.
type Option func(*runConfig)

// WithBindings exposes name/value pairs as root-frame bindings for the
// duration of one Run call. Passing the same name to WithBindings twice
// keeps the last value, matching ordinary map-assignment semantics.
func WithBindings(bindings map[string]Value) Option {
	return func(c *runConfig) {
		if c.bindings == nil {
			c.bindings = make(map[string]Value, len(bindings))
		}
		for k, v := range bindings {
			c.bindings[k] = v
		}
	}
}

// WithMaxOps caps the number of evaluation steps a Run call may take
// before it fails with OpsThresholdExceeded. Pass Unbounded to disable
// the cap; this is also the default when WithMaxOps is never supplied.
func WithMaxOps(maxOps int) Option {
	return func(c *runConfig) { c.maxOps = maxOps }
}

// WithRandSeed pins the source backing the "rand" builtin for one Run
// call, making an otherwise-nondeterministic program reproducible in
// tests. Without it, each Run call seeds its own source from a fresh
// process-level random value so concurrent Run calls on the same Program
// never observe each other's draws.
func WithRandSeed(seed int64) Option {
	return func(c *runConfig) { c.seed = seed; c.hasSeed = true }
}

func (c *runConfig) randSource() *rand.Rand {
	if c.hasSeed {
		return rand.New(rand.NewSource(c.seed))
	}
	return rand.New(rand.NewSource(rand.Int63()))
}
