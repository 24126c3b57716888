package scenario

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/zoo/internal/core/zoo"
)

var ErrInvalidScenario = errors.New("invalid scenario")

type Op string

const (
	OpPrint    Op = "print"
	OpBanner   Op = "banner"
	OpAdopt    Op = "adopt"
	OpDescribe Op = "describe"
	OpTalk     Op = "talk"
	OpFeed     Op = "feed"
	OpGrow     Op = "grow"
)

// Scenario is an ordered list of steps run against a single zoo.
type Scenario struct {
	Name  string `json:"name" yaml:"name"`
	Steps []Step `json:"steps" yaml:"steps"`
}

// Step is one instruction. Which fields matter depends on Op:
//
//	print    Text
//	banner   Text, Target
//	adopt    As, Species, Name, Age, Toy
//	describe Target
//	talk     Target
//	feed     Target (a monkey)
//	grow     Target, As (optional)
//
// Catch makes a zoo refusal (too old, too greedy) print its message instead
// of stopping the run.
type Step struct {
	Op      Op     `json:"op" yaml:"op"`
	Text    string `json:"text,omitempty" yaml:"text,omitempty"`
	As      string `json:"as,omitempty" yaml:"as,omitempty"`
	Target  string `json:"target,omitempty" yaml:"target,omitempty"`
	Species string `json:"species,omitempty" yaml:"species,omitempty"`
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	Age     int    `json:"age,omitempty" yaml:"age,omitempty"`
	Toy     string `json:"toy,omitempty" yaml:"toy,omitempty"`
	Catch   bool   `json:"catch,omitempty" yaml:"catch,omitempty"`
}

//go:embed tour.yaml
var tourYAML []byte

// Tour returns the built-in walk through the zoo.
func Tour() *Scenario {
	s, err := Load(bytes.NewReader(tourYAML))
	if err != nil {
		panic(fmt.Sprintf("scenario: built-in tour: %v", err))
	}
	return s
}

// Load decodes and validates a YAML scenario. Unknown keys are rejected.
func Load(r io.Reader) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks every step and follows handles through the script, so a
// step can only use handles bound by an earlier one and only monkeys are fed.
func (s *Scenario) Validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("%w: no steps", ErrInvalidScenario)
	}

	handles := make(map[string]zoo.Species)
	target := func(i int, st Step) (zoo.Species, error) {
		if st.Target == "" {
			return zoo.SpeciesUnknown, invalidStep(i, st, "target is required")
		}
		species, ok := handles[st.Target]
		if !ok {
			return zoo.SpeciesUnknown, invalidStep(i, st, fmt.Sprintf("unknown handle %q", st.Target))
		}
		return species, nil
	}

	for i, st := range s.Steps {
		switch st.Op {
		case OpPrint:
			if st.Text == "" {
				return invalidStep(i, st, "text is required")
			}
		case OpBanner:
			if _, err := target(i, st); err != nil {
				return err
			}
		case OpAdopt:
			if st.As == "" {
				return invalidStep(i, st, "as is required")
			}
			species, err := zoo.ParseSpecies(st.Species)
			if err != nil {
				return invalidStep(i, st, err.Error())
			}
			if st.Age < 0 {
				return invalidStep(i, st, "age must not be negative")
			}
			handles[st.As] = species
		case OpDescribe, OpTalk:
			if _, err := target(i, st); err != nil {
				return err
			}
		case OpFeed:
			species, err := target(i, st)
			if err != nil {
				return err
			}
			if species != zoo.SpeciesMonkey {
				return invalidStep(i, st, fmt.Sprintf("a %s cannot be fed", species))
			}
		case OpGrow:
			species, err := target(i, st)
			if err != nil {
				return err
			}
			if st.As != "" {
				handles[st.As] = species
			}
		default:
			return invalidStep(i, st, fmt.Sprintf("unknown op %q", st.Op))
		}
	}
	return nil
}

func invalidStep(i int, st Step, reason string) error {
	return fmt.Errorf("%w: step %d (%s): %s", ErrInvalidScenario, i, st.Op, reason)
}
