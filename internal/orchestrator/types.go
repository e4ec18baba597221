package orchestrator

import "strings"

// Mode selects how routing and retrieval are scheduled.
type Mode string

const (
	ModeSequential Mode = "sequential"
	ModeConcurrent Mode = "concurrent"
)

// ParseMode defaults to ModeConcurrent.
func ParseMode(s string) Mode {
	if Mode(strings.ToLower(strings.TrimSpace(s))) == ModeSequential {
		return ModeSequential
	}
	return ModeConcurrent
}

// Options holds the fixed parameters of every dispatch path.
type Options struct {
	Mode Mode

	QAModel string

	// DefaultCollection is queried speculatively and is the only resolution
	// for which the speculative hits are reused.
	DefaultCollection string
	SpeculativeK      int
	PerCollectionK    int
	TotalCap          int

	MaxContextChars int

	// SummarizeCollection is summarized whatever sources were routed.
	SummarizeCollection string
}
