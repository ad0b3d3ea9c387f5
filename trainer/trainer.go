// Package trainer drives the exercise session: pick an exercise, run the
// editor, execute the submission, retry on error, reveal the solution, and
// advance or quit. The machine is an explicit state value stepped one
// transition at a time, so tests can drive it with fakes and inspect every
// intermediate state.
package trainer

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/bawdo/sqldrill/editor"
	"github.com/bawdo/sqldrill/exercise"
)

// State is the session machine's position.
type State int

const (
	StateIdle State = iota
	StatePresenting
	StateEditing
	StateExecuting
	StateShowingResult
	StateShowingError
	StateAwaitingNext
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePresenting:
		return "presenting"
	case StateEditing:
		return "editing"
	case StateExecuting:
		return "executing"
	case StateShowingResult:
		return "showing-result"
	case StateShowingError:
		return "showing-error"
	case StateAwaitingNext:
		return "awaiting-next"
	case StateTerminated:
		return "terminated"
	}
	return "unknown"
}

// ErrDatasetUnavailable marks an executor failure as unrecoverable: the
// dataset itself is gone, not just the query wrong. The machine stops and
// the process exits nonzero.
var ErrDatasetUnavailable = errors.New("dataset unavailable")

// Result is a successful query outcome.
type Result struct {
	Columns   []string
	Rows      [][]string
	Truncated bool
}

// Executor runs a finalized SQL string against the dataset. A malformed
// query returns an ordinary error with the engine's diagnostic text; an
// error wrapping ErrDatasetUnavailable is fatal.
type Executor interface {
	Execute(sql string) (*Result, error)
	Columns(table string) []string
}

// Composer runs one editing cycle and returns the submission or
// cancellation. Errors are terminal-setup failures and abort the session.
type Composer interface {
	Compose(rec exercise.Record, seed string) (editor.Result, error)
}

// Presenter renders session output. Pure sink; the machine never reads
// anything back.
type Presenter interface {
	ShowCounter(shown, total int)
	ShowPrompt(rec exercise.Record)
	ShowResult(res *Result)
	ShowError(msg string)
	ShowSolution(sql string)
	ShowHint(hint string)
	ShowSchema(table string, columns []string)
}

// Prompter asks the user whether to continue after a completed exercise.
// false means quit; an error is treated as quit, not failure.
type Prompter interface {
	Continue() (bool, error)
}

// Machine is the session state machine. Zero value is not usable; New wires
// the collaborators.
type Machine struct {
	state   State
	pool    *Pool
	shown   int // exercises presented in the current pass
	current exercise.Record
	seed    string // editor seed: failed text on retry, empty otherwise
	pending string // submitted text awaiting execution

	exec     Executor
	composer Composer
	pres     Presenter
	prompter Prompter
}

// New builds a session machine over the repository's records. rng seeds the
// selection order.
func New(repo exercise.Repository, exec Executor, comp Composer, pres Presenter, prompter Prompter, rng *rand.Rand) (*Machine, error) {
	records := repo.All()
	if len(records) == 0 {
		return nil, errors.New("trainer: no exercises available")
	}
	return &Machine{
		state:    StateIdle,
		pool:     NewPool(records, rng),
		exec:     exec,
		composer: comp,
		pres:     pres,
		prompter: prompter,
	}, nil
}

// State returns the machine's current state.
func (m *Machine) State() State { return m.state }

// Current returns the exercise being worked on.
func (m *Machine) Current() exercise.Record { return m.current }

// Run steps the machine until termination. The returned error is nil for a
// user-initiated quit and non-nil only for unrecoverable failures.
func (m *Machine) Run() error {
	for m.state != StateTerminated {
		if err := m.Step(); err != nil {
			m.state = StateTerminated
			return err
		}
	}
	return nil
}

// Step performs exactly one state transition.
func (m *Machine) Step() error {
	switch m.state {
	case StateIdle:
		m.selectNext()
	case StatePresenting:
		m.pres.ShowCounter(m.shown, m.pool.Size())
		m.pres.ShowPrompt(m.current)
		m.state = StateEditing
	case StateEditing:
		return m.edit()
	case StateExecuting:
		return m.execute()
	case StateShowingError:
		// Automatic retry on the same exercise; seed already carries the
		// failed text.
		m.state = StateEditing
	case StateShowingResult:
		m.pres.ShowSolution(m.current.ReferenceSQL)
		m.state = StateAwaitingNext
	case StateAwaitingNext:
		cont, err := m.prompter.Continue()
		if err != nil || !cont {
			m.state = StateTerminated
			return nil
		}
		m.selectNext()
	case StateTerminated:
	}
	return nil
}

// selectNext draws an exercise without replacement and moves to Presenting.
func (m *Machine) selectNext() {
	m.current = m.pool.Next()
	m.shown++
	if m.shown > m.pool.Size() {
		m.shown = 1 // new pass
	}
	m.seed = ""
	m.state = StatePresenting
}

// edit runs one editor cycle and routes the outcome: cancellation ends the
// session, in-band commands loop back to Editing, anything else is a
// submission headed for the executor.
func (m *Machine) edit() error {
	res, err := m.composer.Compose(m.current, m.seed)
	if err != nil {
		return fmt.Errorf("trainer: editor failed: %w", err)
	}
	if res.Cancelled {
		m.state = StateTerminated
		return nil
	}

	switch strings.ToLower(strings.TrimSpace(res.Text)) {
	case "quit", "exit":
		m.state = StateTerminated
	case "hint":
		m.pres.ShowHint(m.current.Hint)
		// stays in StateEditing; seed untouched so a retry text survives
	case "schema":
		for _, table := range m.current.Tables {
			m.pres.ShowSchema(table, m.exec.Columns(table))
		}
	case "":
		// Nothing to run; edit again.
	default:
		m.pending = res.Text
		m.state = StateExecuting
	}
	return nil
}

// execute dispatches the pending submission. Query errors show and retry;
// only a vanished dataset is fatal.
func (m *Machine) execute() error {
	res, err := m.exec.Execute(m.pending)
	if err != nil {
		m.pres.ShowError(err.Error())
		if errors.Is(err, ErrDatasetUnavailable) {
			return err
		}
		m.seed = m.pending
		m.state = StateShowingError
		return nil
	}
	m.pres.ShowResult(res)
	m.seed = ""
	m.state = StateShowingResult
	return nil
}
