package zoo

import (
	"fmt"
	"strings"
)

type Species uint8

const (
	SpeciesUnknown Species = iota
	SpeciesLion
	SpeciesSnake
	SpeciesMonkey
)

func (s Species) String() string {
	switch s {
	case SpeciesLion:
		return "lion"
	case SpeciesSnake:
		return "snake"
	case SpeciesMonkey:
		return "monkey"
	default:
		return "unknown"
	}
}

// ParseSpecies maps a name such as "Lion" or "monkey" to its Species.
func ParseSpecies(name string) (Species, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "lion":
		return SpeciesLion, nil
	case "snake":
		return SpeciesSnake, nil
	case "monkey":
		return SpeciesMonkey, nil
	default:
		return SpeciesUnknown, fmt.Errorf("%w: %q", ErrUnknownSpecies, name)
	}
}
