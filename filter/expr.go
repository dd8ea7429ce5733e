package filter

import (
	"encoding/json"
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/shopspring/decimal"
)

// DefaultCacheSize is the compile cache size used by NewManager.
const DefaultCacheSize = 100

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache(size)
		}
	}
}

// WithCustomFunctions adds helper functions, replacing built-in helpers of the
// same name.
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.helpers, funcs)
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) CachingCompiler {
	c := &exprCompiler{helpers: helperFunctions()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type exprCompiler struct {
	helpers map[string]any
	cache   *lruCache
}

// Compile compiles an expression into an executable filter. Record fields are
// available as top-level variables and through Record["field"].
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{Expression: expression, Reason: "empty expression"}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(c.helpers),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	filter := &exprFilter{expression: expression, program: program, helpers: c.helpers}
	if c.cache != nil {
		c.cache.Put(expression, filter)
	}
	return filter, nil
}

func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// Compile compiles expression with the default helpers and no cache.
func Compile(expression string) (CompiledFilter, error) {
	return NewExprCompiler().Compile(expression)
}

func (f *exprFilter) Evaluate(record Record) bool {
	ok, err := f.Match(record)
	return err == nil && ok
}

func (f *exprFilter) Match(record Record) (bool, error) {
	result, err := expr.Run(f.program, f.environment(record))
	if err != nil {
		return false, &EvaluationError{Expression: f.expression, Reason: "run failed", Err: err}
	}
	matched, ok := result.(bool)
	if !ok {
		return false, &EvaluationError{Expression: f.expression, Reason: fmt.Sprintf("result is %T, not bool", result)}
	}
	return matched, nil
}

func (f *exprFilter) Expression() string {
	return f.expression
}

// environment layers helpers over the record so a field can never shadow a
// helper the program was type-checked against.
func (f *exprFilter) environment(record Record) map[string]any {
	env := make(map[string]any, len(record)+len(f.helpers)+1)
	maps.Copy(env, record)
	maps.Copy(env, f.helpers)
	env["Record"] = record
	return env
}

func helperFunctions() map[string]any {
	return map[string]any{
		// Dates
		"now": time.Now,
		"daysSince": func(v any) int {
			t, ok := toTime(v)
			if !ok {
				return 0
			}
			return int(time.Since(t).Hours() / 24)
		},
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
		"monthsAgo": func(months int) time.Time {
			return time.Now().AddDate(0, -months, 0)
		},
		"parseDate": func(v any) time.Time {
			t, _ := toTime(v)
			return t
		},
		// Strings, compared case-insensitively
		"contains": func(str, substr any) bool {
			return strings.Contains(strings.ToLower(toString(str)), strings.ToLower(toString(substr)))
		},
		"startsWith": func(str, prefix any) bool {
			return strings.HasPrefix(strings.ToLower(toString(str)), strings.ToLower(toString(prefix)))
		},
		"endsWith": func(str, suffix any) bool {
			return strings.HasSuffix(strings.ToLower(toString(str)), strings.ToLower(toString(suffix)))
		},
		"lower": func(v any) string { return strings.ToLower(toString(v)) },
		"upper": func(v any) string { return strings.ToUpper(toString(v)) },
		// Token amounts travel as decimal strings
		"amount": toAmount,
	}
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

func toTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}

func toString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	}
	return fmt.Sprint(v)
}

func toAmount(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, _ := n.Float64()
		return f
	case decimal.Decimal:
		return n.InexactFloat64()
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return 0
		}
		return d.InexactFloat64()
	}
	return 0
}

// ToRecords converts typed API values into records by round-tripping them
// through JSON, so field names match the wire names.
func ToRecords[T any](items []T) ([]Record, error) {
	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode records: %w", err)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}
	return records, nil
}
