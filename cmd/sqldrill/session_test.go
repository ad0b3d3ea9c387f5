package main

import (
	"io"
	"math/rand/v2"
	"testing"

	"github.com/bawdo/sqldrill/editor"
	"github.com/bawdo/sqldrill/exercise"
	"github.com/bawdo/sqldrill/internal/testutil"
	"github.com/bawdo/sqldrill/trainer"
)

// scriptedComposer stands in for the tcell editor so a full session can run
// headless against the real dataset.
type scriptedComposer struct {
	script []editor.Result
	calls  int
	seeds  []string
}

func (c *scriptedComposer) Compose(_ exercise.Record, seed string) (editor.Result, error) {
	c.seeds = append(c.seeds, seed)
	if c.calls >= len(c.script) {
		return editor.Result{Cancelled: true}, nil
	}
	res := c.script[c.calls]
	c.calls++
	return res, nil
}

type stopPrompter struct{}

func (stopPrompter) Continue() (bool, error) { return false, nil }

func TestSessionEndToEndAgainstSeededDataset(t *testing.T) {
	conn := openTestDB(t)
	comp := &scriptedComposer{script: []editor.Result{
		{Text: "SELECT * FORM Artist"},
		{Text: "SELECT Name FROM Artist WHERE Name LIKE 'B%';"},
	}}

	repo := exercise.NewStaticRepository(exercise.Catalog())
	machine, err := trainer.New(repo, conn, comp, newPresenter(io.Discard), stopPrompter{}, rand.New(rand.NewPCG(1, 2)))
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, machine.Run())
	testutil.AssertEqual(t, machine.State(), trainer.StateTerminated)

	// The typo failed, so the second editing cycle was seeded with it.
	testutil.AssertEqual(t, len(comp.seeds), 2)
	testutil.AssertEqual(t, comp.seeds[0], "")
	testutil.AssertEqual(t, comp.seeds[1], "SELECT * FORM Artist")
}
