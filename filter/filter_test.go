package filter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func testRecords() []Record {
	return []Record{
		{
			"id":        float64(1),
			"name":      "Go Basics",
			"status":    "ACTIVE",
			"tags":      []any{"go", "backend"},
			"createdAt": time.Now().AddDate(0, 0, -3).Format("2006-01-02T15:04:05"),
			"balance":   "1500.25000000",
		},
		{
			"id":        float64(2),
			"name":      "Rust Deep Dive",
			"status":    "ARCHIVED",
			"tags":      []any{"rust"},
			"createdAt": time.Now().AddDate(0, 0, -90).Format("2006-01-02T15:04:05"),
			"balance":   "20",
		},
	}
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{name: "valid expression", expression: `status == "ACTIVE"`},
		{name: "empty expression", expression: "  ", wantErr: true, errContains: "empty expression"},
		{name: "invalid syntax", expression: `contains(name, "unclosed`, wantErr: true},
		{name: "not boolean", expression: `1 + 2`, wantErr: true},
		{name: "helpers", expression: `contains(name, "go") and daysSince(createdAt) < 30 and amount(balance) > 100`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := Compile(tt.expression)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error but got none")
				}
				var compErr *CompilationError
				if !errors.As(err, &compErr) {
					t.Errorf("expected *CompilationError, got %T", err)
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if filter.Expression() != strings.TrimSpace(tt.expression) {
				t.Errorf("Expression() = %q", filter.Expression())
			}
		})
	}
}

func TestFilterEvaluation(t *testing.T) {
	records := testRecords()

	tests := []struct {
		name       string
		expression string
		want       []bool
	}{
		{"field equality", `status == "ACTIVE"`, []bool{true, false}},
		{"case-insensitive contains", `contains(name, "RUST")`, []bool{false, true}},
		{"starts and ends", `startsWith(name, "go") and endsWith(name, "basics")`, []bool{true, false}},
		{"in list", `"rust" in tags`, []bool{false, true}},
		{"recent", `daysSince(createdAt) <= 7`, []bool{true, false}},
		{"date comparison", `parseDate(createdAt) > daysAgo(30)`, []bool{true, false}},
		{"decimal amount", `amount(balance) >= 1500.25`, []bool{true, false}},
		{"record access", `Record["name"] == "Rust Deep Dive"`, []bool{false, true}},
		{"lower", `lower(status) == "archived"`, []bool{false, true}},
		{"missing field does not match", `missing > 3`, []bool{false, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := Compile(tt.expression)
			if err != nil {
				t.Fatalf("compile: %v", err)
			}
			for i, record := range records {
				if got := filter.Evaluate(record); got != tt.want[i] {
					t.Errorf("record %d: Evaluate() = %v, want %v", i, got, tt.want[i])
				}
			}
		})
	}
}

func TestMatchSurfacesEvaluationError(t *testing.T) {
	filter, err := Compile(`missing > 3`)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	_, err = filter.Match(Record{})
	var evalErr *EvaluationError
	if !errors.As(err, &evalErr) {
		t.Fatalf("expected *EvaluationError, got %v", err)
	}
}

func TestCompilerCache(t *testing.T) {
	c := NewExprCompiler(WithCache(2))

	first, _ := c.Compile(`status == "A"`)
	again, _ := c.Compile(`status == "A"`)
	if first != again {
		t.Errorf("expected cached filter to be reused")
	}

	c.Compile(`status == "B"`)
	c.Compile(`status == "C"`)
	if c.Size() != 2 {
		t.Errorf("Size() = %d, want 2", c.Size())
	}

	evicted, _ := c.Compile(`status == "A"`)
	if evicted == first {
		t.Errorf("expected least recently used entry to be evicted")
	}

	c.Clear()
	if c.Size() != 0 {
		t.Errorf("Size() after Clear = %d, want 0", c.Size())
	}
}

func TestConcurrentEvaluatorKeepsOrder(t *testing.T) {
	records := make([]Record, 1000)
	for i := range records {
		records[i] = Record{"n": i}
	}

	e := NewConcurrentEvaluator(WithWorkers(4), WithBatchSize(50))
	defer e.Stop(context.Background())

	filter, err := Compile(`n % 2 == 0`)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	matches, err := e.Evaluate(context.Background(), filter, records)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(matches) != 500 {
		t.Fatalf("got %d matches, want 500", len(matches))
	}
	for i, m := range matches {
		if m["n"] != i*2 {
			t.Fatalf("match %d = %v, want %d", i, m["n"], i*2)
		}
	}
}

func TestConcurrentEvaluatorCancelled(t *testing.T) {
	records := make([]Record, 500)
	for i := range records {
		records[i] = Record{"n": i}
	}

	e := NewConcurrentEvaluator(WithWorkers(2), WithBatchSize(10))
	defer e.Stop(context.Background())

	filter, _ := Compile(`n >= 0`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := e.Evaluate(ctx, filter, records); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestManager(t *testing.T) {
	m := NewManager()
	defer m.Close(context.Background())

	err := m.RegisterAll(map[string]string{
		"active": `status == "ACTIVE"`,
		"rich":   `amount(balance) > 1000`,
	})
	if err != nil {
		t.Fatalf("RegisterAll: %v", err)
	}

	if got := m.Names(); fmt.Sprint(got) != "[active rich]" {
		t.Errorf("Names() = %v", got)
	}

	ctx := context.Background()
	matches, err := m.Apply(ctx, "active", testRecords())
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(matches) != 1 || matches[0]["name"] != "Go Basics" {
		t.Errorf("unexpected matches %v", matches)
	}

	all, err := m.ApplyAll(ctx, testRecords())
	if err != nil {
		t.Fatalf("ApplyAll: %v", err)
	}
	if len(all) != 2 || len(all["rich"]) != 1 {
		t.Errorf("unexpected batch result %v", all)
	}

	if _, err := m.Apply(ctx, "unknown", nil); !errors.Is(err, ErrFilterNotFound) {
		t.Errorf("expected ErrFilterNotFound, got %v", err)
	}

	// a bad preset leaves the registry untouched
	if err := m.RegisterAll(map[string]string{"bad": `status ==`}); err == nil {
		t.Errorf("expected compile error")
	}
	if _, ok := m.Get("bad"); ok {
		t.Errorf("bad preset must not be registered")
	}

	m.Unregister("rich")
	if _, ok := m.Get("rich"); ok {
		t.Errorf("rich should be unregistered")
	}
}

func TestManagerPresetNamesIgnoreCase(t *testing.T) {
	m := NewManager()
	defer m.Close(context.Background())

	// config keys arrive lowercased, flags keep whatever the user typed
	if err := m.RegisterAll(map[string]string{"stale": `daysSince(createdAt) > 30`}); err != nil {
		t.Fatalf("RegisterAll: %v", err)
	}
	if err := m.Register("Active", `status == "ACTIVE"`); err != nil {
		t.Fatalf("Register: %v", err)
	}

	ctx := context.Background()
	for _, name := range []string{"Stale", "STALE", " stale "} {
		matches, err := m.Apply(ctx, name, testRecords())
		if err != nil {
			t.Fatalf("Apply(%q): %v", name, err)
		}
		if len(matches) != 1 || matches[0]["name"] != "Rust Deep Dive" {
			t.Errorf("Apply(%q) = %v", name, matches)
		}
	}

	if _, ok := m.Get("active"); !ok {
		t.Errorf("Get(active) should find the preset registered as Active")
	}
	if got := m.Names(); fmt.Sprint(got) != "[active stale]" {
		t.Errorf("Names() = %v", got)
	}

	m.Unregister("ACTIVE")
	if _, ok := m.Get("Active"); ok {
		t.Errorf("Active should be unregistered")
	}
}

func TestWorkerPoolRunsAcceptedWorkAcrossStop(t *testing.T) {
	for range 200 {
		pool := NewWorkerPool(2)

		var accepted, ran atomic.Int32
		var submitters sync.WaitGroup
		for range 8 {
			submitters.Add(1)
			go func() {
				defer submitters.Done()
				for range 20 {
					err := pool.Submit(context.Background(), func() { ran.Add(1) })
					if errors.Is(err, ErrPoolStopped) {
						return
					}
					if err != nil {
						t.Errorf("Submit: %v", err)
						return
					}
					accepted.Add(1)
				}
			}()
		}

		stopped := make(chan error, 1)
		go func() { stopped <- pool.Stop(context.Background()) }()

		submitters.Wait()
		select {
		case err := <-stopped:
			if err != nil {
				t.Fatalf("Stop: %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("Stop did not return")
		}

		if ran.Load() != accepted.Load() {
			t.Fatalf("ran %d of %d accepted jobs", ran.Load(), accepted.Load())
		}
		if err := pool.Submit(context.Background(), func() {}); !errors.Is(err, ErrPoolStopped) {
			t.Fatalf("Submit after Stop = %v, want ErrPoolStopped", err)
		}
	}
}

func TestToRecords(t *testing.T) {
	type space struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}

	records, err := ToRecords([]space{{ID: 7, Name: "Go"}})
	if err != nil {
		t.Fatalf("ToRecords: %v", err)
	}
	if records[0]["id"] != float64(7) || records[0]["name"] != "Go" {
		t.Errorf("unexpected record %v", records[0])
	}
}
