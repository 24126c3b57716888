package scenario

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/zoo/internal/core/events/bus"
	"github.com/zeusync/zoo/internal/core/observability/log"
	"github.com/zeusync/zoo/internal/core/zoo"
)

const tourOutput = `Lion:
Name: Leo
Age: 12
Rooar!

Snake:
Name: Cleope
Age: 3
Hiss!

Monkey:
Name: Bongo
Age: 12
Toy: stick
U a aa!
Foood!

GrownLion Leo:
Rooar! Rooar!

GrownMonkey Bongo:
U a aa! U a aa!
Foood! Foood!

GrownGrownMonkey Bongo:
U a aa! U a aa! U a aa! U a aa!
Foood! Foood! Foood! Foood!
Greedy monkey wants too much food!

GrownGrownGrownMonkey Bongo:
U a aa! U a aa! U a aa! U a aa! U a aa! U a aa! U a aa! U a aa!
Foood! Foood! Foood! Foood! I learned to be moderate.

Trying to grow up the monkey even more...
The animal is too old and cannot get older!
`

func TestTour(t *testing.T) {
	var buf bytes.Buffer
	events := bus.New()
	z := zoo.New(&buf, log.NewNop(), events)
	journal, err := zoo.NewJournal(events, log.NewNop())
	require.NoError(t, err)

	tour := Tour()
	report, err := NewRunner(z, log.NewNop()).Run(context.Background(), tour)
	require.NoError(t, err)

	assert.Equal(t, tourOutput, buf.String())
	assert.Equal(t, "tour", report.Scenario)
	assert.Equal(t, len(tour.Steps), report.Steps)
	assert.Equal(t, 2, report.Caught)

	// three adoptions and four growths; the refused fifth growth draws no id
	assert.Equal(t, 7, z.Issued())

	entries := journal.Entries()
	require.NotEmpty(t, entries)
	last := entries[len(entries)-1]
	assert.Equal(t, zoo.EventGrowthRejected, last.Type)
	assert.Equal(t, zoo.MaxStage, last.Record.Stage)
}

func TestRun_UncaughtRefusalStops(t *testing.T) {
	s, err := Load(strings.NewReader(`
name: greedy
steps:
  - {op: adopt, as: bongo, species: monkey, name: Bongo, age: 12, toy: stick}
  - {op: feed, target: bongo}
  - {op: feed, target: bongo}
  - {op: feed, target: bongo}
  - {op: feed, target: bongo}
  - {op: feed, target: bongo}
  - {op: print, text: "never\n"}
`))
	require.NoError(t, err)

	var buf bytes.Buffer
	report, err := NewRunner(zoo.New(&buf, nil, nil), nil).Run(context.Background(), s)
	require.ErrorIs(t, err, zoo.ErrTooGreedy)

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, 5, stepErr.Index)
	assert.Equal(t, OpFeed, stepErr.Op)
	assert.Equal(t, 5, report.Steps)
	assert.Equal(t, "Foood!Foood!Foood!Foood!", buf.String())
}

func TestRun_GrowthChain(t *testing.T) {
	s, err := Load(strings.NewReader(`
name: leo
steps:
  - {op: adopt, as: leo, species: lion, name: Leo, age: 12}
  - {op: grow, target: leo, as: leo1}
  - {op: grow, target: leo1, as: leo2}
  - {op: grow, target: leo2, as: leo3}
  - {op: describe, target: leo3}
  - {op: grow, target: leo3, as: leo4, catch: true}
  - {op: print, text: "\n"}
  - {op: talk, target: leo3}
`))
	require.NoError(t, err)

	var buf bytes.Buffer
	report, err := NewRunner(zoo.New(&buf, nil, nil), nil).Run(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Caught)
	assert.Equal(t,
		"Name: Leo\nAge: 15\nThe animal is too old and cannot get older!\n"+strings.Repeat("Rooar! ", 7)+"Rooar!",
		buf.String())
}

func TestRun_RefusedGrowthLeavesHandleUnbound(t *testing.T) {
	s := &Scenario{Name: "unbound", Steps: []Step{
		{Op: OpAdopt, As: "kaa", Species: "snake", Name: "Kaa", Age: 1},
		{Op: OpGrow, Target: "kaa", As: "kaa1"},
		{Op: OpGrow, Target: "kaa1", As: "kaa2"},
		{Op: OpGrow, Target: "kaa2", As: "kaa3"},
		{Op: OpGrow, Target: "kaa3", As: "kaa4", Catch: true},
		{Op: OpTalk, Target: "kaa4"},
	}}

	var buf bytes.Buffer
	_, err := NewRunner(zoo.New(&buf, nil, nil), nil).Run(context.Background(), s)
	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, 5, stepErr.Index)
	assert.Contains(t, err.Error(), `handle "kaa4" is not bound`)
}

func TestRun_ValidatesBeforeRunning(t *testing.T) {
	s := &Scenario{Name: "mismatch", Steps: []Step{
		{Op: OpAdopt, As: "leo", Species: "lion", Name: "Leo", Age: 12},
		{Op: OpFeed, Target: "leo", Catch: true},
	}}

	_, err := NewRunner(zoo.New(nil, nil, nil), nil).Run(context.Background(), s)
	require.ErrorIs(t, err, ErrInvalidScenario)
}

func TestRun_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	report, err := NewRunner(zoo.New(&buf, nil, nil), nil).Run(ctx, Tour())
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, report.Steps)
	assert.Empty(t, buf.String())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		steps  []Step
		reason string
	}{
		{name: "empty", reason: "no steps"},
		{
			name:   "unknown op",
			steps:  []Step{{Op: "dance"}},
			reason: `unknown op "dance"`,
		},
		{
			name:   "print without text",
			steps:  []Step{{Op: OpPrint}},
			reason: "text is required",
		},
		{
			name:   "adopt without handle",
			steps:  []Step{{Op: OpAdopt, Species: "lion"}},
			reason: "as is required",
		},
		{
			name:   "unknown species",
			steps:  []Step{{Op: OpAdopt, As: "g", Species: "giraffe"}},
			reason: "unknown species",
		},
		{
			name:   "negative age",
			steps:  []Step{{Op: OpAdopt, As: "leo", Species: "lion", Age: -1}},
			reason: "age must not be negative",
		},
		{
			name:   "handle used before adoption",
			steps:  []Step{{Op: OpTalk, Target: "leo"}},
			reason: `unknown handle "leo"`,
		},
		{
			name:   "missing target",
			steps:  []Step{{Op: OpDescribe}},
			reason: "target is required",
		},
		{
			name: "feeding a grown lion",
			steps: []Step{
				{Op: OpAdopt, As: "leo", Species: "lion"},
				{Op: OpGrow, Target: "leo", As: "big"},
				{Op: OpFeed, Target: "big"},
			},
			reason: "a lion cannot be fed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&Scenario{Steps: tt.steps}).Validate()
			require.ErrorIs(t, err, ErrInvalidScenario)
			assert.Contains(t, err.Error(), tt.reason)
		})
	}
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	_, err := Load(strings.NewReader(`
name: typo
steps:
  - {op: print, txt: "hello"}
`))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: hello\nsteps:\n  - {op: print, text: hi}\n"), 0o600))

	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", s.Name)
	require.Len(t, s.Steps, 1)
	assert.Equal(t, Step{Op: OpPrint, Text: "hi"}, s.Steps[0])

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
