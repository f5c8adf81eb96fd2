package pipeline

import "time"

// RunStats tracks aggregate counters for one populate run.
type RunStats struct {
	Sets    int // component sets scanned
	Members int // variant members found
	Unique  int // records surviving deduplication
	Created int // instances placed in the container
	Failed  int // per-member materialization failures
	DryRun  bool
	Elapsed time.Duration
}

// Duplicates returns how many members were dropped by deduplication.
func (s *RunStats) Duplicates() int {
	return s.Members - s.Unique
}
