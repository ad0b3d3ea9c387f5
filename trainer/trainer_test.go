package trainer

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/bawdo/sqldrill/editor"
	"github.com/bawdo/sqldrill/exercise"
)

// scriptComposer returns canned editor outcomes in order and records the
// exercise and seed of every invocation.
type scriptComposer struct {
	script []editor.Result
	calls  int
	recs   []string
	seeds  []string
	err    error
}

func (c *scriptComposer) Compose(rec exercise.Record, seed string) (editor.Result, error) {
	c.recs = append(c.recs, rec.ID)
	c.seeds = append(c.seeds, seed)
	if c.err != nil {
		return editor.Result{}, c.err
	}
	if c.calls >= len(c.script) {
		return editor.Result{Cancelled: true}, nil
	}
	res := c.script[c.calls]
	c.calls++
	return res, nil
}

func submitted(text string) editor.Result { return editor.Result{Text: text} }

// scriptExecutor fails queries containing "FORM" with a syntax diagnostic,
// mimicking the engine boundary.
type scriptExecutor struct {
	fatal   error
	queries []string
}

func (e *scriptExecutor) Execute(sql string) (*Result, error) {
	e.queries = append(e.queries, sql)
	if e.fatal != nil {
		return nil, e.fatal
	}
	if strings.Contains(sql, "FORM") {
		return nil, errors.New(`near "FORM": syntax error`)
	}
	return &Result{Columns: []string{"Name"}, Rows: [][]string{{"Beatles"}}}, nil
}

func (e *scriptExecutor) Columns(table string) []string {
	return []string{table + "Id", "Name"}
}

// logPresenter records presenter calls as compact strings.
type logPresenter struct {
	events []string
}

func (p *logPresenter) ShowCounter(shown, total int) {
	p.events = append(p.events, fmt.Sprintf("counter %d/%d", shown, total))
}
func (p *logPresenter) ShowPrompt(rec exercise.Record) {
	p.events = append(p.events, "prompt "+rec.ID)
}
func (p *logPresenter) ShowResult(res *Result) {
	p.events = append(p.events, fmt.Sprintf("result %d rows", len(res.Rows)))
}
func (p *logPresenter) ShowError(msg string) { p.events = append(p.events, "error "+msg) }
func (p *logPresenter) ShowSolution(sql string) {
	p.events = append(p.events, "solution")
}
func (p *logPresenter) ShowHint(hint string) { p.events = append(p.events, "hint "+hint) }
func (p *logPresenter) ShowSchema(table string, columns []string) {
	p.events = append(p.events, fmt.Sprintf("schema %s %s", table, strings.Join(columns, ",")))
}

func (p *logPresenter) has(prefix string) bool {
	for _, e := range p.events {
		if strings.HasPrefix(e, prefix) {
			return true
		}
	}
	return false
}

// continueN answers yes n times, then quits.
type continueN struct{ n int }

func (c *continueN) Continue() (bool, error) {
	if c.n == 0 {
		return false, nil
	}
	c.n--
	return true, nil
}

func newTestMachine(t *testing.T, records []exercise.Record, comp Composer, exec Executor, prompter Prompter) (*Machine, *logPresenter) {
	t.Helper()
	pres := &logPresenter{}
	m, err := New(exercise.NewStaticRepository(records), exec, comp, pres, prompter, testRNG())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return m, pres
}

func TestFullPassNoRepeats(t *testing.T) {
	t.Parallel()
	const n = 6
	script := make([]editor.Result, n)
	for i := range script {
		script[i] = submitted("SELECT 1")
	}
	comp := &scriptComposer{script: script}
	m, _ := newTestMachine(t, testRecords(n), comp, &scriptExecutor{}, &continueN{n: n - 1})

	if err := m.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	seen := make(map[string]bool)
	for _, id := range comp.recs {
		if seen[id] {
			t.Fatalf("exercise %q repeated within a single pass: %v", id, comp.recs)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Fatalf("presented %d distinct exercises, want %d", len(seen), n)
	}
}

func TestErrorRetriesSameExercise(t *testing.T) {
	t.Parallel()
	comp := &scriptComposer{script: []editor.Result{
		submitted("SELECT * FORM Artist"),
		submitted("SELECT * FROM Artist"),
	}}
	m, pres := newTestMachine(t, testRecords(4), comp, &scriptExecutor{}, &continueN{})

	if err := m.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(comp.recs) != 2 || comp.recs[0] != comp.recs[1] {
		t.Fatalf("retry changed the exercise: %v", comp.recs)
	}
	if comp.seeds[0] != "" {
		t.Errorf("first attempt seed = %q, want empty", comp.seeds[0])
	}
	if comp.seeds[1] != "SELECT * FORM Artist" {
		t.Errorf("retry seed = %q, want the failed text", comp.seeds[1])
	}
	if !pres.has("error") {
		t.Error("error was never shown")
	}
	if !pres.has("solution") {
		t.Error("solution was never revealed after the successful attempt")
	}
}

func TestStepSequenceThroughError(t *testing.T) {
	t.Parallel()
	comp := &scriptComposer{script: []editor.Result{submitted("SELECT * FORM Artist")}}
	m, _ := newTestMachine(t, testRecords(2), comp, &scriptExecutor{}, &continueN{})

	want := []State{StatePresenting, StateEditing, StateExecuting, StateShowingError, StateEditing}
	for i, w := range want {
		if err := m.Step(); err != nil {
			t.Fatalf("step %d failed: %v", i, err)
		}
		if m.State() != w {
			t.Fatalf("after step %d state = %v, want %v", i, m.State(), w)
		}
	}
}

func TestCancelTerminates(t *testing.T) {
	t.Parallel()
	comp := &scriptComposer{} // empty script: first Compose cancels
	m, pres := newTestMachine(t, testRecords(3), comp, &scriptExecutor{}, &continueN{n: 99})

	if err := m.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if m.State() != StateTerminated {
		t.Fatalf("state = %v, want terminated", m.State())
	}
	if pres.has("result") || pres.has("solution") {
		t.Error("cancelled session must not show results or solutions")
	}
}

func TestQuitTokenTerminates(t *testing.T) {
	t.Parallel()
	comp := &scriptComposer{script: []editor.Result{submitted("  QUIT  ")}}
	m, _ := newTestMachine(t, testRecords(3), comp, &scriptExecutor{}, &continueN{n: 99})

	if err := m.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(comp.recs) != 1 {
		t.Fatalf("expected a single editor invocation, got %d", len(comp.recs))
	}
}

func TestHintAndSchemaStayOnExercise(t *testing.T) {
	t.Parallel()
	records := []exercise.Record{{
		ID: "only", Prompt: "p", Hint: "use LIKE",
		Tables: []string{"Artist"}, ReferenceSQL: "SELECT 1",
	}}
	comp := &scriptComposer{script: []editor.Result{
		submitted("hint"),
		submitted("schema"),
		submitted("quit"),
	}}
	m, pres := newTestMachine(t, records, comp, &scriptExecutor{}, &continueN{})

	if err := m.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !pres.has("hint use LIKE") {
		t.Errorf("hint not shown: %v", pres.events)
	}
	if !pres.has("schema Artist ArtistId,Name") {
		t.Errorf("schema not shown: %v", pres.events)
	}
	for _, id := range comp.recs {
		if id != "only" {
			t.Errorf("hint/schema advanced the exercise to %q", id)
		}
	}
	if len(comp.recs) != 3 {
		t.Errorf("expected 3 editor invocations, got %d", len(comp.recs))
	}
}

func TestEmptySubmissionReEdits(t *testing.T) {
	t.Parallel()
	comp := &scriptComposer{script: []editor.Result{
		submitted("   \n  "),
		submitted("quit"),
	}}
	m, pres := newTestMachine(t, testRecords(2), comp, &scriptExecutor{}, &continueN{})

	if err := m.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if pres.has("error") || pres.has("result") {
		t.Errorf("blank submission must not reach the executor: %v", pres.events)
	}
}

func TestDatasetLossIsFatal(t *testing.T) {
	t.Parallel()
	comp := &scriptComposer{script: []editor.Result{submitted("SELECT 1")}}
	exec := &scriptExecutor{fatal: fmt.Errorf("query: %w", ErrDatasetUnavailable)}
	m, _ := newTestMachine(t, testRecords(2), comp, exec, &continueN{})

	err := m.Run()
	if !errors.Is(err, ErrDatasetUnavailable) {
		t.Fatalf("Run error = %v, want ErrDatasetUnavailable", err)
	}
	if m.State() != StateTerminated {
		t.Fatalf("state = %v, want terminated", m.State())
	}
}

func TestComposerFailureAborts(t *testing.T) {
	t.Parallel()
	comp := &scriptComposer{err: errors.New("no tty")}
	m, _ := newTestMachine(t, testRecords(2), comp, &scriptExecutor{}, &continueN{})

	if err := m.Run(); err == nil {
		t.Fatal("expected an error when the editor cannot start")
	}
}

func TestCounterResetsAcrossPasses(t *testing.T) {
	t.Parallel()
	const n = 3
	script := make([]editor.Result, n+1)
	for i := range script {
		script[i] = submitted("SELECT 1")
	}
	comp := &scriptComposer{script: script}
	m, pres := newTestMachine(t, testRecords(n), comp, &scriptExecutor{}, &continueN{n: n})

	if err := m.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	var counters []string
	for _, e := range pres.events {
		if strings.HasPrefix(e, "counter ") {
			counters = append(counters, strings.TrimPrefix(e, "counter "))
		}
	}
	want := []string{"1/3", "2/3", "3/3", "1/3"}
	if len(counters) != len(want) {
		t.Fatalf("counters = %v, want %v", counters, want)
	}
	for i := range want {
		if counters[i] != want[i] {
			t.Errorf("counter[%d] = %s, want %s", i, counters[i], want[i])
		}
	}
}
