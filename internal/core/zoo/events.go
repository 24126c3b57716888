package zoo

import "github.com/zeusync/zoo/internal/core/models"

// Lifecycle event types published on the zoo bus.
const (
	EventAdopted        = "zoo.animal.adopted"
	EventGrown          = "zoo.animal.grown"
	EventGrowthRejected = "zoo.animal.growth_rejected"
)

const eventSource = "zoo"

// Record is the payload of every lifecycle event.
type Record struct {
	ID      models.EntityID
	Name    string
	Species Species
	Age     int
	Stage   int
	Err     error
}

func recordOf(a Animal, err error) Record {
	return Record{
		ID:      a.ID(),
		Name:    a.Name(),
		Species: a.Species(),
		Age:     a.Age(),
		Stage:   a.Stage(),
		Err:     err,
	}
}
