package zoo

import "errors"

// The first two messages are printed verbatim by the demo driver.
var (
	// ErrTooOld is returned when growing an animal that already reached MaxStage.
	ErrTooOld = errors.New("The animal is too old and cannot get older!")
	// ErrTooGreedy is returned when a monkey asks for food more than GreedLimit
	// times without talking in between.
	ErrTooGreedy = errors.New("Greedy monkey wants too much food!")

	ErrSpeciesMismatch = errors.New("animal belongs to another keeper")
	ErrUnknownSpecies  = errors.New("unknown species")
	ErrNoAnimal        = errors.New("no animal given")
)
