package filter

import (
	"context"
)

// Record is one decoded API object, e.g. a space or a proposal.
type Record = map[string]any

// Filter decides whether a record matches.
type Filter interface {
	// Evaluate reports a match. Records that fail to evaluate do not match.
	Evaluate(record Record) bool
}

// CompiledFilter is a filter compiled from an expression.
type CompiledFilter interface {
	Filter

	// Match is Evaluate with the evaluation error surfaced.
	Match(record Record) (bool, error)

	// Expression returns the source expression.
	Expression() string
}

// Compiler compiles filter expressions.
type Compiler interface {
	Compile(expression string) (CompiledFilter, error)
}

// CachingCompiler is a Compiler with a bounded cache of compiled programs.
type CachingCompiler interface {
	Compiler

	Clear()
	Size() int
}

// Evaluator applies one filter to a list of records.
type Evaluator interface {
	Evaluate(ctx context.Context, filter CompiledFilter, records []Record) ([]Record, error)
}

// BatchEvaluator applies several named filters to the same records.
type BatchEvaluator interface {
	EvaluateBatch(ctx context.Context, filters map[string]CompiledFilter, records []Record) (map[string][]Record, error)
}

// BatchResult is the outcome of one filter in a batch.
type BatchResult struct {
	FilterName string
	Matches    []Record
	Error      error
}

// WorkerPool runs submitted work on a bounded set of goroutines.
type WorkerPool interface {
	// Submit blocks until the work is queued or ctx is done. Work accepted
	// before Stop always runs; afterwards Submit returns ErrPoolStopped.
	Submit(ctx context.Context, work func()) error

	// Stop waits for queued work to finish.
	Stop(ctx context.Context) error
}
