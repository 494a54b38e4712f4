package model

// PassResult aggregates the counters of a single classification pass.
// The exit signal and the cleaned output are both derived from the same
// PassResult, so the reported offenders and the rows excluded from the
// cleaned copy can never drift apart.
type PassResult struct {
	LinesScanned   int64 // Total lines read from the input
	Offenders      int64 // Lines that failed the active rule
	RetainedBlanks int64 // Blank lines passed through under blank retention
	LinesWritten   int64 // Lines copied to the cleaned destination
}

// Clean reports whether the pass found no offenders
func (r PassResult) Clean() bool {
	return r.Offenders == 0
}
