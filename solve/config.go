package solve

// Config is the enumerator's toggle set. Every pruner it gates is sound —
// disabling one only costs speed, never correctness. The default,
// DefaultConfig, turns every soundness-preserving pruner on.
type Config struct {
	// SimpleEndReachabilityCheck drops a prefix once its residual count of
	// reachable ends hits zero.
	SimpleEndReachabilityCheck bool `yaml:"simpleEndReachabilityCheck" json:"simpleEndReachabilityCheck"`
	// EdgeStones enables the stone-perpendicularity prefix pruner.
	EdgeStones bool `yaml:"edgeStones" json:"edgeStones"`
	// PartialAreaCheck enables the incremental colour-monotonicity pruner;
	// it is skipped automatically whenever the puzzle has any cancellers,
	// regardless of this flag.
	PartialAreaCheck bool `yaml:"partialAreaCheck" json:"partialAreaCheck"`
	// ClosedAreaCheck would enable the optional closed-area pruner.
	// Unimplemented — this field is accepted for forward compatibility but
	// currently has no effect.
	ClosedAreaCheck bool `yaml:"closedAreaCheck" json:"closedAreaCheck"`
	// MaxSolutions caps the number of solutions collected; 0 means
	// unlimited.
	MaxSolutions int `yaml:"maxSolutions,omitempty" json:"maxSolutions,omitempty"`
}

// DefaultConfig returns every sound pruner enabled and an unlimited
// solution count.
func DefaultConfig() Config {
	return Config{
		SimpleEndReachabilityCheck: true,
		EdgeStones:                 true,
		PartialAreaCheck:           true,
		ClosedAreaCheck:            true,
		MaxSolutions:               0,
	}
}

// SafetyQueueBound is the queue-size safety limit: once the queue slice,
// which keeps every prefix enqueued so far including those already
// processed, reaches it, Solve stops enqueuing new prefixes and returns
// the solutions collected so far with Result.Truncated set.
const SafetyQueueBound = 70_000_000
