package filter

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Manager holds named filter presets and applies them to records.
type Manager struct {
	compiler  Compiler
	evaluator *ConcurrentEvaluator
	logger    zerolog.Logger
	filters   map[string]CompiledFilter
	mu        sync.RWMutex
}

// ManagerOption configures a filter manager
type ManagerOption func(*Manager)

// WithCompiler sets a custom compiler
func WithCompiler(compiler Compiler) ManagerOption {
	return func(m *Manager) {
		m.compiler = compiler
	}
}

// WithEvaluator sets a custom evaluator
func WithEvaluator(evaluator *ConcurrentEvaluator) ManagerOption {
	return func(m *Manager) {
		m.evaluator = evaluator
	}
}

// WithLogger sets the logger used for preset registration.
func WithLogger(logger zerolog.Logger) ManagerOption {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager creates a new filter manager
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		compiler: NewExprCompiler(WithCache(DefaultCacheSize)),
		logger:   zerolog.Nop(),
		filters:  make(map[string]CompiledFilter),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.evaluator == nil {
		m.evaluator = NewConcurrentEvaluator()
	}
	return m
}

// Register compiles expression and stores it under name, replacing any
// previous filter with that name. Names are case-insensitive.
func (m *Manager) Register(name, expression string) error {
	filter, err := m.compiler.Compile(expression)
	if err != nil {
		return fmt.Errorf("failed to compile filter '%s': %w", name, err)
	}

	m.mu.Lock()
	m.filters[presetKey(name)] = filter
	m.mu.Unlock()

	m.logger.Debug().Str("filter", name).Str("expression", expression).Msg("Registered filter")
	return nil
}

// presetKey folds names to lowercase. Viper lowercases map keys read from
// config, so presets are matched case-insensitively.
func presetKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// RegisterAll compiles every preset first and registers none if any fails.
func (m *Manager) RegisterAll(presets map[string]string) error {
	compiled := make(map[string]CompiledFilter, len(presets))
	for name, expression := range presets {
		filter, err := m.compiler.Compile(expression)
		if err != nil {
			return fmt.Errorf("failed to compile filter '%s': %w", name, err)
		}
		compiled[presetKey(name)] = filter
	}

	m.mu.Lock()
	maps.Copy(m.filters, compiled)
	m.mu.Unlock()

	m.logger.Debug().Int("count", len(compiled)).Msg("Registered filter presets")
	return nil
}

// Unregister removes a filter
func (m *Manager) Unregister(name string) {
	m.mu.Lock()
	delete(m.filters, presetKey(name))
	m.mu.Unlock()
}

// Get returns a compiled filter by name
func (m *Manager) Get(name string) (CompiledFilter, bool) {
	m.mu.RLock()
	filter, ok := m.filters[presetKey(name)]
	m.mu.RUnlock()
	return filter, ok
}

// Names returns the registered filter names, lowercased and sorted.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Sorted(maps.Keys(m.filters))
}

// Apply runs the named filter over records.
func (m *Manager) Apply(ctx context.Context, name string, records []Record) ([]Record, error) {
	filter, ok := m.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFilterNotFound, name)
	}
	return m.evaluator.Evaluate(ctx, filter, records)
}

// ApplyExpression compiles an ad-hoc expression and runs it over records.
func (m *Manager) ApplyExpression(ctx context.Context, expression string, records []Record) ([]Record, error) {
	filter, err := m.compiler.Compile(expression)
	if err != nil {
		return nil, err
	}
	return m.evaluator.Evaluate(ctx, filter, records)
}

// ApplyAll runs every registered filter over records.
func (m *Manager) ApplyAll(ctx context.Context, records []Record) (map[string][]Record, error) {
	m.mu.RLock()
	filters := maps.Clone(m.filters)
	m.mu.RUnlock()

	return m.evaluator.EvaluateBatch(ctx, filters, records)
}

// Close stops the evaluator's workers.
func (m *Manager) Close(ctx context.Context) error {
	return m.evaluator.Stop(ctx)
}
