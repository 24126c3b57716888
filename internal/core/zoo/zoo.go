package zoo

import (
	"fmt"
	"io"
	"sync"

	"github.com/zeusync/zoo/internal/core/events/bus"
	"github.com/zeusync/zoo/internal/core/models"
	"github.com/zeusync/zoo/internal/core/observability/log"
)

// Zoo owns the identifier sequence, the output sink and one lazily created
// keeper per species. Build it once and pass it to whatever adopts animals.
type Zoo struct {
	ids    *models.Sequence
	out    *Sink
	events bus.EventBus
	log    log.Log

	lionsOnce   sync.Once
	lions       *Keeper[Animal]
	snakesOnce  sync.Once
	snakes      *Keeper[Animal]
	monkeysOnce sync.Once
	monkeys     *Keeper[Primate]
}

// New builds a zoo speaking into out. A nil events bus disables lifecycle
// events.
func New(out io.Writer, logger log.Log, events bus.EventBus) *Zoo {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Zoo{
		ids:    models.NewSequence(),
		out:    NewSink(out),
		events: events,
		log:    logger.With(log.String("component", "zoo")),
	}
}

func (z *Zoo) Sink() *Sink { return z.out }

// Issued returns how many entities, adopted or grown, the zoo created.
func (z *Zoo) Issued() int { return int(z.ids.Current()) }

func (z *Zoo) Lions() *Keeper[Animal] {
	z.lionsOnce.Do(func() {
		z.lions = newKeeper(z, SpeciesLion,
			func(b body, _ Traits) Animal { return &Lion{body: b} },
			func(g *Grown, _ Animal) Animal { return g },
		)
	})
	return z.lions
}

func (z *Zoo) Snakes() *Keeper[Animal] {
	z.snakesOnce.Do(func() {
		z.snakes = newKeeper(z, SpeciesSnake,
			func(b body, _ Traits) Animal { return &Snake{body: b} },
			func(g *Grown, _ Animal) Animal { return g },
		)
	})
	return z.snakes
}

func (z *Zoo) Monkeys() *Keeper[Primate] {
	z.monkeysOnce.Do(func() {
		z.monkeys = newKeeper(z, SpeciesMonkey,
			func(b body, t Traits) Primate { return &Monkey{body: b, toy: t.Toy} },
			func(g *Grown, inner Primate) Primate { return &GrownMonkey{Grown: g, monkey: inner} },
		)
	})
	return z.monkeys
}

// Adopt dispatches to the keeper of the given species.
func (z *Zoo) Adopt(species Species, t Traits) (Animal, error) {
	switch species {
	case SpeciesLion:
		return z.Lions().Adopt(t), nil
	case SpeciesSnake:
		return z.Snakes().Adopt(t), nil
	case SpeciesMonkey:
		return z.Monkeys().Adopt(t), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownSpecies, species)
	}
}

// GrowUp dispatches to the keeper of the animal's species. Grown monkeys keep
// their monkey capabilities.
func (z *Zoo) GrowUp(a Animal) (Animal, error) {
	if a == nil {
		return nil, ErrNoAnimal
	}
	switch a.Species() {
	case SpeciesLion:
		return z.Lions().GrowUp(a)
	case SpeciesSnake:
		return z.Snakes().GrowUp(a)
	case SpeciesMonkey:
		p, ok := a.(Primate)
		if !ok {
			return nil, fmt.Errorf("%w: %s does not behave like a monkey", ErrSpeciesMismatch, a.Name())
		}
		grown, err := z.Monkeys().GrowUp(p)
		if err != nil {
			return nil, err
		}
		return grown, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownSpecies, a.Species())
	}
}

// Stats returns the counters of the keepers created so far. It reads the
// keepers without synchronization, so call it once the zoo is idle.
func (z *Zoo) Stats() []KeeperStats {
	var stats []KeeperStats
	if z.lions != nil {
		stats = append(stats, z.lions.Stats())
	}
	if z.snakes != nil {
		stats = append(stats, z.snakes.Stats())
	}
	if z.monkeys != nil {
		stats = append(stats, z.monkeys.Stats())
	}
	return stats
}

func (z *Zoo) publish(eventType string, rec Record) {
	if z.events == nil {
		return
	}
	if err := z.events.Publish(bus.NewEvent(eventType, eventSource, rec)); err != nil {
		z.log.Warn("lifecycle event handler failed",
			log.String("event", eventType),
			log.Uint64("animal_id", uint64(rec.ID)),
			log.Error(err),
		)
	}
}
