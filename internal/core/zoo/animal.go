package zoo

import (
	"fmt"

	"github.com/zeusync/zoo/internal/core/models"
)

const (
	roarToken       = "Rooar!"
	hissToken       = "Hiss!"
	chatterToken    = "U a aa!"
	foodToken       = "Foood!"
	separator       = " "
	moderationToken = "I learned to be moderate."
)

// Animal is any entity living in the zoo, grown or not.
type Animal interface {
	ID() models.EntityID
	Name() string
	Age() int
	Species() Species
	// Stage is 0 for a freshly adopted animal and counts how many times it
	// was grown up otherwise.
	Stage() int

	// Talk writes the species vocalization to the zoo sink.
	Talk()
	Describe() string
}

// Feeder is implemented by animals that can beg for food.
type Feeder interface {
	AskFood() error
}

// Primate is the monkey capability set, shared by monkeys and grown monkeys.
type Primate interface {
	Animal
	Feeder
	Toy() string
}

// body holds the state common to every entity.
type body struct {
	id      models.EntityID
	name    string
	age     int
	species Species
	out     *Sink
}

func (b *body) ID() models.EntityID { return b.id }
func (b *body) Name() string        { return b.name }
func (b *body) Age() int            { return b.age }
func (b *body) Species() Species    { return b.species }
func (b *body) Stage() int          { return 0 }

func (b *body) Describe() string {
	return fmt.Sprintf("Name: %s\nAge: %d\n", b.name, b.age)
}
