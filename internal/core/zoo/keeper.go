package zoo

import (
	"fmt"
	"sync/atomic"

	"github.com/zeusync/zoo/internal/core/observability/log"
)

// Traits are the attributes an animal is adopted with. Toy only matters for
// monkeys.
type Traits struct {
	Age  int
	Name string
	Toy  string
}

// Keeper is the only place animals of one species are created and grown.
// Each Zoo owns exactly one keeper per species.
type Keeper[A Animal] struct {
	species Species
	zoo     *Zoo
	log     log.Log

	// adopt builds a fresh animal around b; wrap turns a growth of inner
	// into a value of the keeper's animal type.
	adopt func(b body, t Traits) A
	wrap  func(g *Grown, inner A) A

	adopted  atomic.Int64
	grown    atomic.Int64
	rejected atomic.Int64
}

func newKeeper[A Animal](z *Zoo, species Species, adopt func(body, Traits) A, wrap func(*Grown, A) A) *Keeper[A] {
	k := &Keeper[A]{
		species: species,
		zoo:     z,
		log:     z.log.With(log.Stringer("species", species)),
		adopt:   adopt,
		wrap:    wrap,
	}
	k.log.Debug("keeper ready")
	return k
}

func (k *Keeper[A]) Species() Species { return k.species }

// Adopt creates a new animal of the keeper's species. It never fails.
func (k *Keeper[A]) Adopt(t Traits) A {
	a := k.adopt(body{
		id:      k.zoo.ids.Next(),
		name:    t.Name,
		age:     t.Age,
		species: k.species,
		out:     k.zoo.out,
	}, t)
	k.adopted.Add(1)
	k.zoo.publish(EventAdopted, recordOf(a, nil))
	return a
}

// GrowUp returns a new animal one stage older than a. Growing past MaxStage
// fails with ErrTooOld and leaves a as it was.
func (k *Keeper[A]) GrowUp(a A) (A, error) {
	var zero A
	if any(a) == nil {
		return zero, ErrNoAnimal
	}
	if a.Species() != k.species {
		return zero, fmt.Errorf("%w: %s keeper cannot grow a %s", ErrSpeciesMismatch, k.species, a.Species())
	}

	g, err := newGrown(k.zoo.ids, k.zoo.out, a)
	if err != nil {
		k.rejected.Add(1)
		k.zoo.publish(EventGrowthRejected, recordOf(a, err))
		return zero, err
	}

	grown := k.wrap(g, a)
	k.grown.Add(1)
	k.zoo.publish(EventGrown, recordOf(grown, nil))
	return grown, nil
}

// Stats returns the keeper counters.
func (k *Keeper[A]) Stats() KeeperStats {
	return KeeperStats{
		Species:  k.species,
		Adopted:  int(k.adopted.Load()),
		Grown:    int(k.grown.Load()),
		Rejected: int(k.rejected.Load()),
	}
}

type KeeperStats struct {
	Species  Species
	Adopted  int
	Grown    int
	Rejected int
}
