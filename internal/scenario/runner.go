package scenario

import (
	"context"
	"errors"
	"fmt"

	"github.com/zeusync/zoo/internal/core/observability/log"
	"github.com/zeusync/zoo/internal/core/zoo"
)

// StepError reports the step a run stopped at.
type StepError struct {
	Index int
	Op    Op
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index, e.Op, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Report summarizes a finished run.
type Report struct {
	Scenario string
	Steps    int
	// Caught counts refusals turned into messages by catching steps.
	Caught int
}

type Runner struct {
	zoo *zoo.Zoo
	log log.Log
}

func NewRunner(z *zoo.Zoo, logger log.Log) *Runner {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Runner{zoo: z, log: logger.With(log.String("component", "scenario"))}
}

// Run executes the scenario step by step, checking ctx in between.
func (r *Runner) Run(ctx context.Context, s *Scenario) (Report, error) {
	report := Report{Scenario: s.Name}
	if err := s.Validate(); err != nil {
		return report, err
	}

	handles := make(map[string]zoo.Animal)
	out := r.zoo.Sink()

	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return report, &StepError{Index: i, Op: st.Op, Err: err}
		}

		err := r.step(handles, out, st)
		if err != nil && st.Catch && isRefusal(err) {
			r.log.Info("refusal caught",
				log.Int("step", i),
				log.String("op", string(st.Op)),
				log.String("target", st.Target),
				log.Error(err),
			)
			out.Print(err.Error())
			report.Caught++
			err = nil
		}
		if err != nil {
			return report, &StepError{Index: i, Op: st.Op, Err: err}
		}
		report.Steps++
	}

	if err := out.Err(); err != nil {
		return report, fmt.Errorf("write output: %w", err)
	}
	return report, nil
}

func (r *Runner) step(handles map[string]zoo.Animal, out *zoo.Sink, st Step) error {
	var target zoo.Animal
	if st.Target != "" {
		var ok bool
		if target, ok = handles[st.Target]; !ok {
			// bound by a grow step that was refused
			return fmt.Errorf("handle %q is not bound", st.Target)
		}
	}

	switch st.Op {
	case OpPrint:
		out.Print(st.Text)
	case OpBanner:
		out.Print(st.Text, target.Name(), ":\n")
	case OpAdopt:
		species, err := zoo.ParseSpecies(st.Species)
		if err != nil {
			return err
		}
		a, err := r.zoo.Adopt(species, zoo.Traits{Age: st.Age, Name: st.Name, Toy: st.Toy})
		if err != nil {
			return err
		}
		handles[st.As] = a
		r.log.Debug("adopted", log.String("as", st.As), log.Uint64("id", uint64(a.ID())))
	case OpDescribe:
		out.Print(target.Describe())
	case OpTalk:
		target.Talk()
	case OpFeed:
		feeder, ok := target.(zoo.Feeder)
		if !ok {
			return fmt.Errorf("%s cannot be fed", st.Target)
		}
		return feeder.AskFood()
	case OpGrow:
		grown, err := r.zoo.GrowUp(target)
		if err != nil {
			return err
		}
		if st.As != "" {
			handles[st.As] = grown
		}
		r.log.Debug("grown",
			log.String("target", st.Target),
			log.String("as", st.As),
			log.Int("stage", grown.Stage()),
		)
	default:
		return fmt.Errorf("unknown op %q", st.Op)
	}
	return nil
}

func isRefusal(err error) bool {
	return errors.Is(err, zoo.ErrTooOld) || errors.Is(err, zoo.ErrTooGreedy)
}
