package zoo

import (
	"errors"
	"fmt"

	"github.com/zeusync/zoo/internal/core/models"
)

// MaxStage is the last growth stage an animal can reach.
const MaxStage = 3

var (
	_ Animal  = (*Grown)(nil)
	_ Primate = (*GrownMonkey)(nil)
)

// Grown wraps an animal and presents it one year older. Talking makes the
// wrapped animal talk twice, so a stage N animal produces 2^N base
// vocalizations in nested pairs.
type Grown struct {
	body
	inner Animal
	stage int
}

// newGrown checks the stage before drawing an identifier, so a rejected
// growth leaves the sequence untouched.
func newGrown(ids *models.Sequence, out *Sink, inner Animal) (*Grown, error) {
	if inner.Stage() >= MaxStage {
		return nil, ErrTooOld
	}
	return &Grown{
		body: body{
			id:      ids.Next(),
			name:    inner.Name(),
			age:     inner.Age() + 1,
			species: inner.Species(),
			out:     out,
		},
		inner: inner,
		stage: inner.Stage() + 1,
	}, nil
}

func (g *Grown) Stage() int { return g.stage }

// Unwrap returns the animal this one grew from.
func (g *Grown) Unwrap() Animal { return g.inner }

func (g *Grown) Talk() {
	g.inner.Talk()
	g.out.Print(separator)
	g.inner.Talk()
}

// GrownMonkey is a grown animal that still behaves like a monkey.
type GrownMonkey struct {
	*Grown
	monkey Primate
}

func (m *GrownMonkey) Toy() string { return m.monkey.Toy() }

// AskFood asks the wrapped monkey twice. A failure of the first request is
// returned as is; a greedy refusal on the second one is answered with
// moderation instead.
func (m *GrownMonkey) AskFood() error {
	if err := m.monkey.AskFood(); err != nil {
		return err
	}
	m.out.Print(separator)
	if err := m.monkey.AskFood(); err != nil {
		if !errors.Is(err, ErrTooGreedy) {
			return err
		}
		m.out.Print(moderationToken)
	}
	return nil
}

func (m *GrownMonkey) Describe() string {
	return m.Grown.Describe() + fmt.Sprintf("Toy: %s\n", m.Toy())
}
